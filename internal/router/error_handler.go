package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
)

// ErrorHandler converts every error escaping a handler into the uniform
// {message, error_code, resolution} body. Unknown errors are logged and
// returned as an opaque 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status int
		body   apperrors.ErrorResponse
	)

	var httpErr *apperrors.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.StatusCode
		body = httpErr.ToErrorResponse()
	case errors.As(err, &echoErr):
		// Bind failures, 404s and method-not-allowed come through here.
		status = echoErr.Code
		body = apperrors.ErrorResponse{
			Message:    http.StatusText(echoErr.Code),
			ErrorCode:  "request_error",
			Resolution: "Please check the request and try again",
		}
		if msg, ok := echoErr.Message.(string); ok {
			body.Message = msg
		}
	default:
		mapped := apperrors.MapErrorToHTTP(err)
		status = mapped.StatusCode
		body = mapped.ToErrorResponse()
	}

	if status >= http.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		if writeErr := c.NoContent(status); writeErr != nil {
			log.Printf("write error response: %v", writeErr)
		}
		return
	}
	if writeErr := c.JSON(status, body); writeErr != nil {
		log.Printf("write error response: %v", writeErr)
	}
}
