package synology

import "fmt"

// DSM webapi error codes. The common range (100-199) applies to every API;
// the 400 range is specific to SYNO.API.Auth.
const (
	codeUnknown          = 100
	codeInvalidParameter = 101
	codeNoSuchAPI        = 102
	codeNoSuchMethod     = 103
	codeVersion          = 104
	codePermission       = 105
	codeSessionTimeout   = 106
	codeSessionLost      = 107

	codeAuthInvalidCredentials = 400
	codeAuthAccountDisabled    = 401
	codeAuthPermissionDenied   = 402
	codeAuthOTPRequired        = 403
	codeAuthOTPFailed          = 404
)

var errorMessages = map[int]string{
	codeUnknown:          "unknown error",
	codeInvalidParameter: "invalid parameter",
	codeNoSuchAPI:        "the requested API does not exist",
	codeNoSuchMethod:     "the requested method does not exist",
	codeVersion:          "the requested version does not support this functionality",
	codePermission:       "the logged in session does not have permission",
	codeSessionTimeout:   "session timeout",
	codeSessionLost:      "session interrupted by a duplicate login",

	codeAuthInvalidCredentials: "invalid account or password",
	codeAuthAccountDisabled:    "account disabled",
	codeAuthPermissionDenied:   "permission denied",
	codeAuthOTPRequired:        "2-step verification code required",
	codeAuthOTPFailed:          "2-step verification failed",
}

// APIError is a webapi response with success=false.
type APIError struct {
	API  string
	Code int
}

func (e *APIError) Error() string {
	if msg, ok := errorMessages[e.Code]; ok {
		return fmt.Sprintf("%s: %s (code %d)", e.API, msg, e.Code)
	}
	return fmt.Sprintf("%s: error code %d", e.API, e.Code)
}

// IsAuthError reports whether the code belongs to the SYNO.API.Auth range,
// i.e. the credentials (not the connection) were rejected.
func (e *APIError) IsAuthError() bool {
	return e.Code >= codeAuthInvalidCredentials && e.Code <= codeAuthOTPFailed
}
