package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const HeaderTotalCount = "X-Total-Count"

// SecurityHeaders sets the hardening headers, HSTS only on secure requests
func SecurityHeaders() echo.MiddlewareFunc {
	return echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})
}

// CORS reflects the request origin when it is in allowedOrigins, or when the list contains "*".
// Other origins get no CORS headers at all.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	wildcard := slices.Contains(allowedOrigins, "*")

	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return wildcard || slices.Contains(allowedOrigins, origin), nil
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType, echo.HeaderAuthorization, APIKeyHeader, echo.HeaderXRequestedWith,
		},
		ExposeHeaders:    []string{HeaderTotalCount},
		AllowCredentials: true,
	})
}

// BodyLimit rejects bodies larger than limit, e.g. "10M"
func BodyLimit(limit string) echo.MiddlewareFunc {
	return echomw.BodyLimit(limit)
}
