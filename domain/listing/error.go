package listing

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anft-xyz/goapi/domain"
)

type ErrorCode string

const (
	ErrorCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrorCodeBadRequest  ErrorCode = "BAD_REQUEST"
	ErrorCodeUpstream    ErrorCode = "UPSTREAM"
	ErrorCodeUnavailable ErrorCode = "UNAVAILABLE"
	ErrorCodeInternal    ErrorCode = "INTERNAL"
)

// APIError is a non 2xx answer of the listing api. Payload keeps the raw body so it can be
// forwarded as the error payload of a rejected fetch.
type APIError struct {
	StatusCode int             `json:"statusCode"`
	Code       ErrorCode       `json:"code"`
	Message    string          `json:"message"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func NewAPIError(status int, body []byte) *APIError {
	e := &APIError{
		StatusCode: status,
		Code:       codeByStatus(status),
	}
	var parsed struct {
		Message string `json:"message"`
		Title   string `json:"title"`
		Detail  string `json:"detail"`
	}
	if json.Valid(body) {
		e.Payload = json.RawMessage(body)
		if err := json.Unmarshal(body, &parsed); err == nil {
			switch {
			case parsed.Message != "":
				e.Message = parsed.Message
			case parsed.Title != "":
				e.Message = parsed.Title
			default:
				e.Message = parsed.Detail
			}
		}
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("listing api %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Code == ErrorCodeNotFound {
		return domain.ErrNotFound
	}
	return domain.ErrUpstream
}

func codeByStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrorCodeNotFound
	case status >= 400 && status < 500:
		return ErrorCodeBadRequest
	case status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return ErrorCodeUnavailable
	}
	return ErrorCodeUpstream
}
