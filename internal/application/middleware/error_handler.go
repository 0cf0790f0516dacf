package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// PanicError is a recovered panic together with the stack where it happened
type PanicError struct {
	Err   error
	Stack []byte
}

func (e *PanicError) Error() string {
	return e.Err.Error()
}

func (e *PanicError) Unwrap() error {
	return e.Err
}

// Recover turns panics into PanicError values handled by the error handler
func Recover() echo.MiddlewareFunc {
	return echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableErrorHandler: true,
		LogErrorFunc: func(_ echo.Context, err error, stack []byte) error {
			return &PanicError{Err: err, Stack: stack}
		},
	})
}

// ErrorHandler converts every error returned by handlers or middlewares into an envelope.
// In hardened mode unexpected failures only expose a generic message.
func ErrorHandler(hardened bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, envelope := normalize(err, hardened)
		logError(c, err, status)

		if envelope.RetryAfter > 0 {
			c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(envelope.RetryAfter))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, envelope)
		}
		if writeErr != nil {
			log.Error(msg.GetMessage("app.error"), zap.Error(writeErr))
		}
	}
}

func normalize(err error, hardened bool) (int, model.Envelope) {
	if appErr, ok := model.AsAppError(err); ok {
		envelope := model.Envelope{
			Success:    false,
			Message:    appErr.Message,
			Error:      appErr.Detail,
			RetryAfter: appErr.RetryAfter,
		}
		if envelope.Error == "" && appErr.Err != nil && !hardened {
			envelope.Error = appErr.Err.Error()
		}
		return appErr.Status(), envelope
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return httpErr.Code, model.Envelope{Success: false, Message: httpErrorMessage(httpErr)}
	}

	status := http.StatusInternalServerError
	if httpErr != nil {
		status = httpErr.Code
	}
	if hardened {
		return status, model.Envelope{Success: false, Message: msg.GetMessage("security.error.internal")}
	}

	envelope := model.Envelope{Success: false, Message: err.Error()}
	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		envelope.Stack = string(panicErr.Stack)
	}
	return status, envelope
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if httpErr.Code == http.StatusNotFound {
		return msg.GetMessage("security.error.not-found")
	}
	if message, ok := httpErr.Message.(string); ok && message != "" {
		return message
	}
	if httpErr.Message != nil {
		return fmt.Sprint(httpErr.Message)
	}
	return http.StatusText(httpErr.Code)
}

func logError(c echo.Context, err error, status int) {
	fields := []zap.Field{
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Int("status", status),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	}

	if status >= http.StatusInternalServerError {
		log.Error(msg.GetMessage("app.error"), fields...)
		return
	}
	log.Warn(msg.GetMessage("app.error"), fields...)
}
