package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"geometa/internal/model"
	"geometa/internal/repository"
)

const callerKey = "caller"

// Authenticator resolves a plaintext API key to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type keyAuthenticator struct {
	keys repository.ApiKeyRepository
}

// NewAuthenticator creates an Authenticator backed by the api_keys table.
func NewAuthenticator(keys repository.ApiKeyRepository) Authenticator {
	return &keyAuthenticator{keys: keys}
}

// Authenticate returns (nil, nil) for unknown keys and keys without a user.
func (a *keyAuthenticator) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}
	key, err := a.keys.FindByHash(ctx, HashKey(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup api key: %w", err)
	}
	return key.User, nil
}

// SetCaller stores the authenticated user on the request context.
func SetCaller(c echo.Context, user *model.User) {
	c.Set(callerKey, user)
}

// Caller returns the authenticated user, or nil for anonymous requests.
func Caller(c echo.Context) *model.User {
	user, _ := c.Get(callerKey).(*model.User)
	return user
}
