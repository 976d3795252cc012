// Package export writes the geometry pipeline's artifacts to disk: the gore
// sewing-pattern SVG, the canopy surface STL, and the optional wireframe
// preview PNG.  All writes follow a write-to-temp-then-rename discipline so a
// failed run never leaves a half-written artifact behind.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/canopyforge/canopyforge/internal/domain/canopy"
	"github.com/canopyforge/canopyforge/pkg/errors"
)

// PatternFilename returns the deterministic sewing-pattern filename for the
// design: gore_D{diameter}m_G{gores}_SA{seam_cm}cm.svg.
func PatternFilename(p canopy.Params) string {
	return fmt.Sprintf("gore_D%.2fm_G%d_SA%.1fcm.svg", p.Diameter, p.Gores, p.SeamAllowance*100)
}

// MeshFilename returns the deterministic mesh filename for the design:
// parachute_D{diameter}m_G{gores}.stl.
func MeshFilename(p canopy.Params) string {
	return fmt.Sprintf("parachute_D%.2fm_G%d.stl", p.Diameter, p.Gores)
}

// PreviewFilename returns the wireframe preview filename for the design.
func PreviewFilename(p canopy.Params) string {
	return fmt.Sprintf("parachute_D%.2fm_G%d_preview.png", p.Diameter, p.Gores)
}

// EnsureDir creates the output directory if it does not exist.  Creation is
// idempotent and safe under concurrent callers; the 2-D and 3-D writers may
// both race through here.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeOutputDirFailed, "cannot create output directory").
			WithDetail("dir=" + dir)
	}
	return nil
}

// atomicWrite writes the artifact to a temporary file in the target directory
// and renames it into place, so readers only ever observe complete files.
// write receives the open temporary file.
func atomicWrite(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeFileWriteFailed, "cannot create temporary file").
			WithDetail("path=" + path)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrCodeFileWriteFailed, "failed to write artifact").
			WithDetail("path=" + path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrCodeFileWriteFailed, "failed to flush artifact").
			WithDetail("path=" + path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrCodeFileWriteFailed, "failed to finalize artifact").
			WithDetail("path=" + path)
	}
	return nil
}
