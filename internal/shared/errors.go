package shared

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusClientClosedRequest is returned when the caller went away before a response was ready.
const StatusClientClosedRequest = 499

type APIError struct {
	Code    string `json:"code" example:"invalid_timeframe"`
	Message string `json:"message" example:"unsupported analytics configuration"`
	Details any    `json:"details,omitempty" swaggertype:"object"`
}

func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

func (e *APIError) ToHTTP(status int) *echo.HTTPError {
	return echo.NewHTTPError(status, e)
}

func BadRequest(code, message string) *echo.HTTPError {
	return NewAPIError(code, message).ToHTTP(http.StatusBadRequest)
}

func ClientClosedRequest(code, message string) *echo.HTTPError {
	return NewAPIError(code, message).ToHTTP(StatusClientClosedRequest)
}

func InternalError(code, message string) *echo.HTTPError {
	return NewAPIError(code, message).ToHTTP(http.StatusInternalServerError)
}
