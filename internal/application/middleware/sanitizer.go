package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
	"todo-api/pkg/sanitize"
)

// Sanitizer rewrites JSON request bodies before any handler reads them
func Sanitizer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody || !isJSON(req.Header.Get(echo.HeaderContentType)) {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			_ = req.Body.Close()
			if err != nil {
				return err
			}

			if len(bytes.TrimSpace(body)) > 0 {
				body, err = sanitize.JSON(body)
				if err != nil {
					return model.NewValidationError(msg.GetMessage("todo.error.invalid-body"))
				}
			}

			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
			return next(c)
		}
	}
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), echo.MIMEApplicationJSON)
}
