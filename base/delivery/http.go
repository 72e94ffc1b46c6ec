package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/anft-xyz/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data in the {data, status} envelope. An error as data overrides status by
// its kind and is rendered as its message.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = errorStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func errorStatus(err error, fallback int) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidAddress), errors.Is(err, domain.ErrInvalidJsonFormat),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNoContract):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrStale):
		return http.StatusConflict
	}
	return fallback
}
