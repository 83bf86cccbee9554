package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"geometa/internal/auth"
	apperrors "geometa/internal/errors"
	"geometa/internal/model"
	"geometa/internal/repository/mocks"
)

type userFixture struct {
	users     *mocks.UserRepository
	insights  *mocks.InsightRepository
	feedbacks *mocks.FeedbackRepository
	cache     *MockInvalidator
	svc       UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:     new(mocks.UserRepository),
		insights:  new(mocks.InsightRepository),
		feedbacks: new(mocks.FeedbackRepository),
		cache:     new(MockInvalidator),
	}
	f.svc = NewUserService(f.users, f.insights, f.feedbacks, f.cache, bcrypt.MinCost)
	return f
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *mocks.UserRepository)
		wantErr   error
	}{
		{
			name: "successful registration",
			setupMock: func(m *mocks.UserRepository) {
				m.On("Taken", mock.Anything, "alice", "alice@example.com", uint(0)).Return(false, nil)
				m.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.ApiKey")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = 1
					}).
					Return(nil)
			},
		},
		{
			name: "username or email taken",
			setupMock: func(m *mocks.UserRepository) {
				m.On("Taken", mock.Anything, "alice", "alice@example.com", uint(0)).Return(true, nil)
			},
			wantErr: apperrors.ErrConflict,
		},
		{
			name: "duplicate key on insert",
			setupMock: func(m *mocks.UserRepository) {
				m.On("Taken", mock.Anything, "alice", "alice@example.com", uint(0)).Return(false, nil)
				m.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			wantErr: apperrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture()
			tt.setupMock(f.users)

			user, token, err := f.svc.Register(context.Background(), Registration{
				Username: "alice", Email: "alice@example.com", Password: "hunter22", FirstName: "Alice",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.RoleUser, user.Role)
			assert.Equal(t, model.StatusActive, user.Status)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
			assert.NotEmpty(t, token)

			key := f.users.Calls[1].Arguments.Get(2).(*model.ApiKey)
			assert.Equal(t, auth.HashKey(token), key.KeyHash)
			f.users.AssertExpectations(t)
		})
	}
}

func TestUserService_RegisterAdmin(t *testing.T) {
	f := newUserFixture()
	var stored *model.ApiKey
	f.users.On("Taken", mock.Anything, "root", "root@example.com", uint(0)).Return(false, nil)
	f.users.On("Register", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleAdmin
	}), mock.AnythingOfType("*model.ApiKey")).
		Run(func(args mock.Arguments) { stored = args.Get(2).(*model.ApiKey) }).
		Return(nil)

	user, token, err := f.svc.RegisterAdmin(context.Background(), Registration{
		Username: "root", Email: "root@example.com", Password: "pw", FirstName: "Admin",
	})

	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	require.NotNil(t, stored)
	assert.True(t, stored.Admin)
	assert.Equal(t, auth.HashKey(token), stored.KeyHash)
	f.users.AssertExpectations(t)
}

func TestUserService_Resolve_NotFound(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindByName", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_Resolve_StoreError(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindByName", mock.Anything, "alice").Return(nil, errors.New("boom"))

	_, err := f.svc.Resolve(context.Background(), "alice")
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorContains(t, err, "boom")
}

func TestUserService_Update_RoleRules(t *testing.T) {
	admin := &model.User{ID: 1, Username: "root", Email: "root@example.com", Role: model.RoleAdmin}
	bob := &model.User{ID: 2, Username: "bob", Email: "bob@example.com", Role: model.RoleUser}
	userRole, adminRole := model.RoleUser, model.RoleAdmin

	t.Run("admin cannot demote themself", func(t *testing.T) {
		f := newUserFixture()
		_, err := f.svc.Update(context.Background(), admin, admin, UserChanges{
			Username: "root", Email: "root@example.com", FirstName: "Root", Role: &userRole,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.EqualError(t, err, "You cannot remove your own admin rights.")
		f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("user cannot change roles", func(t *testing.T) {
		f := newUserFixture()
		_, err := f.svc.Update(context.Background(), bob, bob, UserChanges{
			Username: "bob", Email: "bob@example.com", FirstName: "Bob", Role: &adminRole,
		})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("user may resend their current role", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("Taken", mock.Anything, "bob", "bob@example.com", uint(2)).Return(false, nil)
		f.users.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.cache.On("Invalidate", mock.Anything, []string{"user:2"}).Return()

		updated, err := f.svc.Update(context.Background(), bob, bob, UserChanges{
			Username: "bob", Email: "bob@example.com", FirstName: "Bobby", Role: &userRole,
		})
		require.NoError(t, err)
		assert.Equal(t, "Bobby", updated.FirstName)
	})

	t.Run("admin promotes another user", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("Taken", mock.Anything, "bob", "bob@example.com", uint(2)).Return(false, nil)
		f.users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.ID == 2 && u.Role == model.RoleAdmin
		})).Return(nil)
		f.cache.On("Invalidate", mock.Anything, []string{"user:2"}).Return()

		updated, err := f.svc.Update(context.Background(), admin, bob, UserChanges{
			Username: "bob", Email: "bob@example.com", FirstName: "Bob", Role: &adminRole,
		})
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, updated.Role)
		assert.Equal(t, model.RoleUser, bob.Role, "target is not mutated in place")
		f.cache.AssertExpectations(t)
	})
}

func TestUserService_Update_RenameInvalidatesRelated(t *testing.T) {
	f := newUserFixture()
	alice := &model.User{ID: 4, Username: "alice", Email: "alice@example.com"}

	f.users.On("Taken", mock.Anything, "alicia", "alice@example.com", uint(4)).Return(false, nil)
	f.users.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.insights.On("IDsByCreator", mock.Anything, uint(4)).Return([]uint{10}, nil)
	f.feedbacks.On("IDsByUser", mock.Anything, uint(4)).Return([]uint{20, 21}, nil)
	f.cache.On("Invalidate", mock.Anything, []string{"user:4", "insight:10", "feedback:20", "feedback:21"}).Return()

	_, err := f.svc.Update(context.Background(), alice, alice, UserChanges{
		Username: "alicia", Email: "alice@example.com", FirstName: "Alice", Password: strPtr("newpass"),
	})
	require.NoError(t, err)
	f.cache.AssertExpectations(t)
}

func TestUserService_Update_Conflict(t *testing.T) {
	f := newUserFixture()
	alice := &model.User{ID: 4, Username: "alice", Email: "alice@example.com"}
	f.users.On("Taken", mock.Anything, "bob", "alice@example.com", uint(4)).Return(true, nil)

	_, err := f.svc.Update(context.Background(), alice, alice, UserChanges{
		Username: "bob", Email: "alice@example.com", FirstName: "Alice",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserService_BlankPhoneStoredAsNull(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("Taken", mock.Anything, "alice", "alice@example.com", uint(0)).Return(false, nil)
		f.users.On("Register", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Phone == nil
		}), mock.AnythingOfType("*model.ApiKey")).Return(nil)

		user, _, err := f.svc.Register(context.Background(), Registration{
			Username: "alice", Email: "alice@example.com", Password: "hunter22", FirstName: "Alice", Phone: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, user.Phone)
		f.users.AssertExpectations(t)
	})

	t.Run("update clears the phone", func(t *testing.T) {
		f := newUserFixture()
		alice := &model.User{ID: 4, Username: "alice", Email: "alice@example.com", Phone: strPtr("+358401234567")}
		f.users.On("Taken", mock.Anything, "alice", "alice@example.com", uint(4)).Return(false, nil)
		f.users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Phone == nil
		})).Return(nil)
		f.cache.On("Invalidate", mock.Anything, []string{"user:4"}).Return()

		updated, err := f.svc.Update(context.Background(), alice, alice, UserChanges{
			Username: "alice", Email: "alice@example.com", FirstName: "Alice", Phone: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.Phone)
		f.users.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	f := newUserFixture()
	alice := &model.User{ID: 4, Username: "alice"}

	f.insights.On("IDsByCreator", mock.Anything, uint(4)).Return([]uint{10}, nil)
	f.feedbacks.On("IDsByUser", mock.Anything, uint(4)).Return([]uint{}, nil)
	f.users.On("Delete", mock.Anything, alice).Return(nil)
	f.cache.On("Invalidate", mock.Anything, []string{"insight:10", "user:4"}).Return()

	require.NoError(t, f.svc.Delete(context.Background(), alice))
	f.users.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}
