package textcrest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by New when no API key is supplied.
var ErrMissingAPIKey = errors.New("textcrest: api key is required")

// Machine-readable error codes the server is known to return. The set is
// defined by the server and may grow; the client does not validate against it.
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeInvalidPhone        = "INVALID_PHONE"
	CodeRateLimited         = "RATE_LIMITED"
	CodeValidationError     = "VALIDATION_ERROR"
)

// APIError is a non-2xx response from the TextCrest API. Status always holds
// the HTTP status code; Code and Message are filled from the response body
// when the server supplied them.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.Code != "":
		return fmt.Sprintf("textcrest: %s (code=%s, status=%d)", e.Message, e.Code, e.Status)
	case e.Message != "":
		return fmt.Sprintf("textcrest: %s (status=%d)", e.Message, e.Status)
	case e.Code != "":
		return fmt.Sprintf("textcrest: request failed (code=%s, status=%d)", e.Code, e.Status)
	default:
		return fmt.Sprintf("textcrest: request failed with status %d", e.Status)
	}
}

// apiErrorBody is the error envelope the server returns on failures.
type apiErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// newAPIError builds an APIError from a failed response. Decoding is best
// effort: a non-JSON body still yields an error carrying the status code.
func newAPIError(status int, body []byte) *APIError {
	var payload apiErrorBody
	_ = json.Unmarshal(body, &payload)
	return &APIError{
		Status:  status,
		Code:    payload.Code,
		Message: payload.Message,
	}
}
