// Package handlers implements the gin handlers of the design API.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeError maps err's error code to an HTTP status and writes the error
// body. Unknown errors become 500s without leaking internals.
func writeError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal("internal error").WithCause(err)
	}
	c.AbortWithStatusJSON(appErr.Code.HTTPStatus(), ErrorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Detail:  appErr.Detail,
	})
}
