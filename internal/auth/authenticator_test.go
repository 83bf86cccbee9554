package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"geometa/internal/model"
	"geometa/internal/repository/mocks"
)

func TestAuthenticate_KnownKey(t *testing.T) {
	keys := new(mocks.ApiKeyRepository)
	alice := &model.User{ID: 1, Username: "alice"}
	keys.On("FindByHash", mock.Anything, HashKey("token")).
		Return(&model.ApiKey{KeyHash: HashKey("token"), User: alice}, nil)

	user, err := NewAuthenticator(keys).Authenticate(context.Background(), "token")
	require.NoError(t, err)
	assert.Same(t, alice, user)
	keys.AssertExpectations(t)
}

func TestAuthenticate_UnknownKeyIsAnonymous(t *testing.T) {
	keys := new(mocks.ApiKeyRepository)
	keys.On("FindByHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	user, err := NewAuthenticator(keys).Authenticate(context.Background(), "bogus")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthenticate_EmptyTokenSkipsLookup(t *testing.T) {
	keys := new(mocks.ApiKeyRepository)

	user, err := NewAuthenticator(keys).Authenticate(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, user)
	keys.AssertNotCalled(t, "FindByHash", mock.Anything, mock.Anything)
}

func TestAuthenticate_StoreError(t *testing.T) {
	keys := new(mocks.ApiKeyRepository)
	keys.On("FindByHash", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := NewAuthenticator(keys).Authenticate(context.Background(), "token")
	assert.ErrorContains(t, err, "connection refused")
}

func TestCaller_RoundTrip(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, Caller(c))

	bob := &model.User{ID: 2, Username: "bob"}
	SetCaller(c, bob)
	assert.Same(t, bob, Caller(c))
}
