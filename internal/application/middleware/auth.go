package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const (
	APIKeyHeader     = "X-API-Key"
	APIKeyQueryParam = "api_key"

	// AuthenticatedKey is the context key telling whether the request carried a valid API key
	AuthenticatedKey = "authenticated"
)

// Authenticator checks requests against a fixed set of shared API keys
type Authenticator struct {
	keys [][]byte
}

// NewAuthenticator accepts the given keys, blank keys are ignored
func NewAuthenticator(keys ...string) *Authenticator {
	accepted := make([][]byte, 0, len(keys))
	for _, key := range keys {
		if key != "" {
			accepted = append(accepted, []byte(key))
		}
	}
	return &Authenticator{keys: accepted}
}

// RequireAPIKey rejects requests without a valid API key
func (auth *Authenticator) RequireAPIKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := credential(c)
			if key == "" {
				return model.NewMissingCredentialError(msg.GetMessage("security.error.missing-api-key"))
			}
			if !auth.Valid(key) {
				return model.NewInvalidCredentialError(msg.GetMessage("security.error.invalid-api-key"))
			}

			c.Set(AuthenticatedKey, true)
			return next(c)
		}
	}
}

// OptionalAPIKey lets anonymous requests through but rejects unknown keys
func (auth *Authenticator) OptionalAPIKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := credential(c)
			if key != "" && !auth.Valid(key) {
				return model.NewInvalidCredentialError(msg.GetMessage("security.error.invalid-api-key"))
			}

			c.Set(AuthenticatedKey, key != "")
			return next(c)
		}
	}
}

// Valid compares key against every accepted key in constant time
func (auth *Authenticator) Valid(key string) bool {
	candidate := []byte(key)
	valid := 0
	for _, accepted := range auth.keys {
		valid |= subtle.ConstantTimeCompare(candidate, accepted)
	}
	return valid == 1
}

// IsAuthenticated reports whether an auth middleware accepted the request API key
func IsAuthenticated(c echo.Context) bool {
	authenticated, _ := c.Get(AuthenticatedKey).(bool)
	return authenticated
}

// credential reads the API key from the header, falling back to the query string
func credential(c echo.Context) string {
	if key := c.Request().Header.Get(APIKeyHeader); key != "" {
		return key
	}
	return c.QueryParam(APIKeyQueryParam)
}
