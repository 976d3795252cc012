package telemetry

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
)

// thrustHeader is the first line the rig firmware writes to every log.
const thrustHeader = "Millis\tRawValue\tWeight(g)"

// ParseThrustLog reads a tab-separated thrust log. The header line is
// mandatory; blank lines are skipped.
func ParseThrustLog(r io.Reader) (*Log, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, apperrors.New(apperrors.ErrCodeThrustLogMalformed, "thrust log is empty")
	}
	if header := strings.TrimSpace(scanner.Text()); header != thrustHeader {
		return nil, apperrors.New(apperrors.ErrCodeThrustLogMalformed, "unexpected thrust log header").
			WithDetailf("got %q, want %q", header, thrustHeader)
	}

	log := &Log{}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, apperrors.New(apperrors.ErrCodeThrustLogMalformed, "wrong field count").
				WithDetailf("line %d has %d fields, want 3", lineNo, len(fields))
		}

		millis, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeThrustLogMalformed, "bad millis value").
				WithDetailf("line %d", lineNo)
		}
		raw, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeThrustLogMalformed, "bad raw value").
				WithDetailf("line %d", lineNo)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeThrustLogMalformed, "bad weight value").
				WithDetailf("line %d", lineNo)
		}

		log.Samples = append(log.Samples, Sample{Millis: millis, Raw: raw, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFileReadFailed, "reading thrust log")
	}
	return log, nil
}

// ReadThrustLog opens and parses the thrust log at path.
func ReadThrustLog(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFileReadFailed, "opening thrust log").
			WithDetailf("path=%s", path)
	}
	defer f.Close()
	return ParseThrustLog(f)
}

// ParseCalibration reads a calibration file of "key: value" lines. Both the
// Tare and ScaleFactor keys are required; a zero scale factor is rejected
// since it cannot convert any reading.
func ParseCalibration(r io.Reader) (Calibration, error) {
	var (
		cal       Calibration
		haveTare  bool
		haveScale bool
		scanner   = bufio.NewScanner(r)
		lineNo    int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Calibration{}, apperrors.New(apperrors.ErrCodeCalibrationMalformed, "expected key: value").
				WithDetailf("line %d: %q", lineNo, line)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return Calibration{}, apperrors.Wrap(err, apperrors.ErrCodeCalibrationMalformed, "bad calibration value").
				WithDetailf("line %d", lineNo)
		}

		switch strings.TrimSpace(key) {
		case "Tare":
			cal.Tare = parsed
			haveTare = true
		case "ScaleFactor":
			cal.ScaleFactor = parsed
			haveScale = true
		default:
			// Unknown keys are tolerated so firmware revisions can add fields.
		}
	}
	if err := scanner.Err(); err != nil {
		return Calibration{}, apperrors.Wrap(err, apperrors.ErrCodeFileReadFailed, "reading calibration")
	}
	if !haveTare || !haveScale {
		return Calibration{}, apperrors.New(apperrors.ErrCodeCalibrationMalformed, "missing Tare or ScaleFactor")
	}
	if cal.ScaleFactor == 0 {
		return Calibration{}, apperrors.New(apperrors.ErrCodeCalibrationMalformed, "scale factor must not be zero")
	}
	return cal, nil
}

// ReadCalibration opens and parses the calibration file at path.
func ReadCalibration(path string) (Calibration, error) {
	f, err := os.Open(path)
	if err != nil {
		return Calibration{}, apperrors.Wrap(err, apperrors.ErrCodeFileReadFailed, "opening calibration").
			WithDetailf("path=%s", path)
	}
	defer f.Close()
	return ParseCalibration(f)
}
