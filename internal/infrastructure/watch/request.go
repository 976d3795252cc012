package watch

import (
	"github.com/spf13/viper"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
	"github.com/canopyforge/canopyforge/pkg/types/design"
)

// LoadRequest reads a YAML design request file. Fields left unset keep their
// zero values so the pipeline applies the configured defaults.
func LoadRequest(path string) (design.Request, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return design.Request{}, apperrors.Wrap(err, apperrors.ErrCodeFileReadFailed, "reading design file").
			WithDetailf("path=%s", path)
	}

	var req design.Request
	if err := v.Unmarshal(&req); err != nil {
		return design.Request{}, apperrors.Wrap(err, apperrors.ErrCodeSerialization, "parsing design file").
			WithDetailf("path=%s", path)
	}
	return req, nil
}
