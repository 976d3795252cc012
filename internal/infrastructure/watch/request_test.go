package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
)

func TestLoadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canopy.yaml")
	content := `diameter_m: 2.0
gores: 12
seam_allowance_cm: 1.5
spill_diameter_cm: 20
phi_steps: 100
theta_steps: 50
preview: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	req, err := LoadRequest(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, req.DiameterM)
	assert.Equal(t, 12, req.Gores)
	assert.Equal(t, 1.5, req.SeamAllowanceCM)
	assert.Equal(t, 20.0, req.SpillDiameterCM)
	assert.Equal(t, 100, req.PhiSteps)
	assert.Equal(t, 50, req.ThetaSteps)
	assert.True(t, req.Preview)
}

func TestLoadRequestPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.yml")
	require.NoError(t, os.WriteFile(path, []byte("diameter_m: 1.2\ngores: 8\n"), 0o644))

	req, err := LoadRequest(path)
	require.NoError(t, err)
	assert.Equal(t, 1.2, req.DiameterM)
	assert.Equal(t, 8, req.Gores)
	assert.Zero(t, req.PhiSteps, "unset fields keep zero values")
	assert.Zero(t, req.Inflation)
	assert.False(t, req.Preview)
}

func TestLoadRequestMissingFile(t *testing.T) {
	_, err := LoadRequest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFileReadFailed))
}

func TestLoadRequestMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diameter_m: [unclosed"), 0o644))

	_, err := LoadRequest(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFileReadFailed))
}
