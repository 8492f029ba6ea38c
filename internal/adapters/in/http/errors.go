package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized reports missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Field   string            `json:"field,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewErrorHandler maps application errors onto HTTP responses. Unclassified
// errors are logged and reported as 500 without details.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("failed to write error response", "error", err)
		}
	}
}

func classify(err error) (int, ErrorResponse) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    "validation_error",
			Message: "request is invalid",
			Errors:  processValidationErrors(validationErrs),
		}
	}

	var conflict *errs.StateConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, ErrorResponse{
			Code:    "state_conflict",
			Message: err.Error(),
			Field:   conflict.Field,
			Errors:  map[string]string{"reason": conflict.Code},
		}
	}

	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, ErrorResponse{
			Code:    "validation_error",
			Message: err.Error(),
			Errors:  fieldErrors(err),
		}
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict, ErrorResponse{Code: "already_exists", Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ErrorResponse{Code: "not_found", Message: err.Error()}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Code: "forbidden", Message: err.Error()}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Code: "unauthorized", Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorResponse{
			Code:    http.StatusText(httpErr.Code),
			Message: http.StatusText(httpErr.Code),
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Code:    "internal_error",
			Message: "internal server error",
		}
	}
}

// fieldErrors lists the offending field of every validation error in err,
// following both joined errors and single %w wrappers.
func fieldErrors(err error) map[string]string {
	result := make(map[string]string)
	var walk func(error)
	walk = func(e error) {
		switch typed := e.(type) {
		case nil:
			return
		case *errs.ValueIsRequiredError:
			result[typed.ParamName] = typed.Error()
		case *errs.ValueIsInvalidError:
			result[typed.ParamName] = typed.Error()
		case *errs.ValueIsOutOfRangeError:
			result[typed.ParamName] = typed.Error()
		case interface{ Unwrap() []error }:
			for _, inner := range typed.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(e))
		}
	}
	walk(err)
	return result
}
