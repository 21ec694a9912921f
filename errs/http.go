package errs

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// codes maps application error codes to http status codes.
var codes = map[string]int{
	ECONFLICT:     http.StatusConflict,
	EINVALID:      http.StatusBadRequest,
	ENOTFOUND:     http.StatusNotFound,
	EUNAUTHORIZED: http.StatusForbidden,
	EINTERNAL:     http.StatusInternalServerError,
}

// errorResponse is the json body of an error reply, matching the shape the
// api clients expect: a false result plus a typed error description.
type errorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// ErrorStatusCode translates an application error code to an http status.
func ErrorStatusCode(code string) int {
	if status, ok := codes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ReturnError writes the error as a typed json payload with the status that
// matches its code. Internal errors are logged and rendered with a generic
// message.
func ReturnError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := ErrorCode(err), ErrorMessage(err)
	if code == EINTERNAL {
		LogError(r, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ErrorStatusCode(code))
	json.NewEncoder(w).Encode(errorResponse{
		Result:       false,
		ErrorType:    code,
		ErrorMessage: message,
	})
}

// LogError logs an error together with the request it occurred on.
func LogError(r *http.Request, err error) {
	zap.L().Error("http error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
}
