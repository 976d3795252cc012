package canopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyforge/canopyforge/pkg/errors"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name     string
		diameter float64
		gores    int
		seam     float64
		spill    float64
		wantErr  bool
	}{
		{"typical design", 2.0, 12, 0.015, 0.2, false},
		{"minimal design", 0.5, 1, 0, 0, false},
		{"zero diameter", 0, 8, 0.01, 0, true},
		{"negative diameter", -1.5, 8, 0.01, 0, true},
		{"zero gores", 2.0, 0, 0.01, 0, true},
		{"negative seam allowance", 2.0, 8, -0.01, 0, true},
		{"negative spill diameter", 2.0, 8, 0.01, -0.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParams(tt.diameter, tt.gores, tt.seam, tt.spill)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidParameter))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.diameter, p.Diameter)
			assert.Equal(t, tt.gores, p.Gores)
		})
	}
}

func TestParams_Radius(t *testing.T) {
	p, err := NewParams(2.0, 12, 0.015, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Radius())
}
