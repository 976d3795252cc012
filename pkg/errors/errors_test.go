package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without detail",
			err:  &AppError{Code: ErrCodeInvalidParameter, Message: "diameter must be positive"},
			want: "[GEO_001] diameter must be positive",
		},
		{
			name: "with detail",
			err:  &AppError{Code: ErrCodeFileWriteFailed, Message: "failed to write mesh", Detail: "path=/out/parachute.stl"},
			want: "[IO_002] failed to write mesh: path=/out/parachute.stl",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNew_CapturesStack(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.NotEmpty(t, err.Stack)
}

func TestWrap(t *testing.T) {
	t.Run("nil cause returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	})

	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := Wrap(cause, ErrCodeFileWriteFailed, "failed to write pattern")
		require.NotNil(t, err)
		assert.Equal(t, ErrCodeFileWriteFailed, err.Code)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unknown code preserves original classification", func(t *testing.T) {
		inner := InvalidParameter("gores must be at least 1")
		err := Wrap(inner, CodeUnknown, "design rejected")
		assert.Equal(t, ErrCodeInvalidParameter, err.Code)
	})
}

func TestIsCode(t *testing.T) {
	inner := DegenerateGeometry("spill hole swallows the canopy")
	outer := fmt.Errorf("pipeline failed: %w", Wrap(inner, CodeUnknown, "3-D path"))

	assert.True(t, IsCode(outer, ErrCodeDegenerateGeometry))
	assert.False(t, IsCode(outer, ErrCodeFileWriteFailed))
	assert.False(t, IsCode(nil, ErrCodeInternal))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(InvalidParameter("diameter must be positive")))
	assert.False(t, IsValidation(Internal("boom")))
	assert.False(t, IsValidation(nil))
}

func TestIsIO(t *testing.T) {
	assert.True(t, IsIO(New(ErrCodeOutputDirFailed, "mkdir failed")))
	assert.True(t, IsIO(New(ErrCodeFileWriteFailed, "write failed")))
	assert.False(t, IsIO(InvalidParameter("bad")))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, CodeOK},
		{"plain error", stderrors.New("plain"), CodeUnknown},
		{"app error", NotFound("no such design"), ErrCodeNotFound},
		{"wrapped", fmt.Errorf("outer: %w", DegenerateGeometry("empty mesh")), ErrCodeDegenerateGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestWithDetail(t *testing.T) {
	base := InvalidParameter("spill diameter must be non-negative")
	detailed := base.WithDetail("spill_diameter=-0.2")

	assert.Empty(t, base.Detail, "receiver must not be mutated")
	assert.Equal(t, "spill_diameter=-0.2", detailed.Detail)
	assert.Equal(t, base.Code, detailed.Code)

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("ignored"))
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("EACCES")
	err := New(ErrCodeOutputDirFailed, "cannot create output directory").WithCause(cause)
	assert.ErrorIs(t, err, cause)
}
