package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"geometa/internal/auth"
)

// lookupError marks a store failure during key lookup, as opposed to a
// missing or unknown key.
type lookupError struct {
	err error
}

func (e *lookupError) Error() string { return e.err.Error() }
func (e *lookupError) Unwrap() error { return e.err }

// Identity resolves "Authorization: Bearer <key>" to the calling user. A
// missing, malformed or unknown key leaves the request anonymous; handlers
// decide whether that is enough.
func Identity(authn auth.Authenticator) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:              "header:" + echo.HeaderAuthorization,
		AuthScheme:             "Bearer",
		ContinueOnIgnoredError: true,
		Validator: func(key string, c echo.Context) (bool, error) {
			user, err := authn.Authenticate(c.Request().Context(), key)
			if err != nil {
				return false, &lookupError{err: err}
			}
			if user == nil {
				return false, nil
			}
			auth.SetCaller(c, user)
			return true, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			var le *lookupError
			if errors.As(err, &le) {
				return le.err
			}
			return nil
		},
	})
}
