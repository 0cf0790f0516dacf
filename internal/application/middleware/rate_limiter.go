package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/ratelimit"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimiter counts every request against the window of its client address
func RateLimiter(useCase ratelimit.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision, err := useCase.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				if appErr, ok := model.AsAppError(err); ok && appErr.Kind == model.KindRateLimited {
					c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(appErr.RetryAfter))
				}
				return err
			}

			if decision.Limit > 0 {
				header := c.Response().Header()
				header.Set(HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
				header.Set(HeaderRateLimitRemaining, strconv.Itoa(max(decision.Limit-decision.Count, 0)))
			}
			return next(c)
		}
	}
}
