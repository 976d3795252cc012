package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeConflict       ErrorCode = "COMMON_004"
	ErrCodeTimeout        ErrorCode = "COMMON_005"
	ErrCodeValidation     ErrorCode = "COMMON_006"
	ErrCodeSerialization  ErrorCode = "COMMON_007"
	ErrCodeNotImplemented ErrorCode = "COMMON_008"
)

// Geometry Error Codes
const (
	// ErrCodeInvalidParameter marks physical parameters that fail validation
	// (diameter ≤ 0, gore count < 1, negative seam allowance or spill
	// diameter).  Always raised before any file is written.
	ErrCodeInvalidParameter ErrorCode = "GEO_001"

	// ErrCodeDegenerateGeometry marks a spill hole wide enough to swallow the
	// whole canopy: the filter would leave zero vertices.  Detected explicitly
	// rather than exporting an empty mesh.
	ErrCodeDegenerateGeometry ErrorCode = "GEO_002"

	// ErrCodeMeshInconsistent marks a mesh whose face buffer references a
	// vertex index outside the vertex buffer.
	ErrCodeMeshInconsistent ErrorCode = "GEO_003"
)

// Output / filesystem Error Codes
const (
	ErrCodeOutputDirFailed ErrorCode = "IO_001"
	ErrCodeFileWriteFailed ErrorCode = "IO_002"
	ErrCodeFileReadFailed  ErrorCode = "IO_003"
)

// Telemetry Error Codes
const (
	ErrCodeThrustLogMalformed   ErrorCode = "TLM_001"
	ErrCodeCalibrationMalformed ErrorCode = "TLM_002"
)

// Aliases kept for call-site readability.
const (
	CodeOK             = ErrorCode("OK")
	CodeUnknown        = ErrorCode("UNKNOWN")
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeNotImplemented = ErrCodeNotImplemented
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes for the API layer.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	ErrCodeTimeout:        http.StatusGatewayTimeout,
	ErrCodeValidation:     http.StatusUnprocessableEntity,
	ErrCodeSerialization:  http.StatusInternalServerError,
	ErrCodeNotImplemented: http.StatusNotImplemented,

	ErrCodeInvalidParameter:   http.StatusBadRequest,
	ErrCodeDegenerateGeometry: http.StatusUnprocessableEntity,
	ErrCodeMeshInconsistent:   http.StatusInternalServerError,

	ErrCodeOutputDirFailed: http.StatusInternalServerError,
	ErrCodeFileWriteFailed: http.StatusInternalServerError,
	ErrCodeFileReadFailed:  http.StatusInternalServerError,

	ErrCodeThrustLogMalformed:   http.StatusBadRequest,
	ErrCodeCalibrationMalformed: http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status associated with the code, defaulting to
// 500 for codes without an explicit mapping.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := ErrorCodeHTTPStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
