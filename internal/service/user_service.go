package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"geometa/internal/auth"
	"geometa/internal/cache"
	apperrors "geometa/internal/errors"
	"geometa/internal/logging"
	"geometa/internal/model"
	"geometa/internal/repository"
)

// Registration holds the fields of a new user.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     *string
}

// UserChanges is a full replacement of a user's editable fields. Nil
// pointers keep the current value.
type UserChanges struct {
	Username       string
	Email          string
	FirstName      string
	LastName       string
	Phone          *string
	Password       *string
	Status         *model.Status
	Role           *model.Role
	ProfilePicture *string
}

// UserService exposes user operations.
type UserService interface {
	Register(ctx context.Context, reg Registration) (*model.User, string, error)
	RegisterAdmin(ctx context.Context, reg Registration) (*model.User, string, error)
	Resolve(ctx context.Context, usernameOrEmail string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, caller, target *model.User, changes UserChanges) (*model.User, error)
	Delete(ctx context.Context, target *model.User) error
}

type userService struct {
	users      repository.UserRepository
	insights   repository.InsightRepository
	feedbacks  repository.FeedbackRepository
	cache      Invalidator
	bcryptCost int
}

// NewUserService builds a UserService. A nil cache disables invalidation.
func NewUserService(
	users repository.UserRepository,
	insights repository.InsightRepository,
	feedbacks repository.FeedbackRepository,
	cache Invalidator,
	bcryptCost int,
) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		users:      users,
		insights:   insights,
		feedbacks:  feedbacks,
		cache:      orNoop(cache),
		bcryptCost: bcryptCost,
	}
}

// Register creates a user and its API key. The plaintext key is returned
// once and never stored.
func (s *userService) Register(ctx context.Context, reg Registration) (*model.User, string, error) {
	return s.register(ctx, reg, model.RoleUser)
}

// RegisterAdmin creates an admin user holding an admin key.
func (s *userService) RegisterAdmin(ctx context.Context, reg Registration) (*model.User, string, error) {
	return s.register(ctx, reg, model.RoleAdmin)
}

func (s *userService) register(ctx context.Context, reg Registration, role model.Role) (*model.User, string, error) {
	taken, err := s.users.Taken(ctx, reg.Username, reg.Email, 0)
	if err != nil {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}
	if taken {
		return nil, "", apperrors.Conflict("Username or email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	token, digest, err := auth.GenerateKey()
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     reg.Username,
		Email:        reg.Email,
		Phone:        nonEmpty(reg.Phone),
		PasswordHash: string(hashed),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Status:       model.StatusActive,
		Role:         role,
	}
	key := &model.ApiKey{KeyHash: digest, Admin: role == model.RoleAdmin}
	if err := s.users.Register(ctx, user, key); err != nil {
		return nil, "", translate(err, "register user")
	}

	logging.Info().Uint("user_id", user.ID).Str("username", user.Username).Stringer("role", role).Msg("user registered")
	return user, token, nil
}

func (s *userService) Resolve(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	user, err := s.users.FindByName(ctx, usernameOrEmail)
	if err != nil {
		return nil, notFound(err, "User not found.", "find user")
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update applies changes on behalf of caller. Only admins may change roles,
// and an admin may not demote themself.
func (s *userService) Update(ctx context.Context, caller, target *model.User, changes UserChanges) (*model.User, error) {
	if changes.Role != nil && *changes.Role != target.Role {
		if !caller.IsAdmin() {
			return nil, apperrors.Forbidden("Only admins can change roles.")
		}
		if caller.ID == target.ID {
			return nil, apperrors.Validation("You cannot remove your own admin rights.")
		}
	}

	taken, err := s.users.Taken(ctx, changes.Username, changes.Email, target.ID)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict("Username or email already exists.")
	}

	renamed := changes.Username != target.Username
	updated := *target
	updated.Username = changes.Username
	updated.Email = changes.Email
	updated.FirstName = changes.FirstName
	updated.LastName = changes.LastName
	if changes.Phone != nil {
		updated.Phone = nonEmpty(changes.Phone)
	}
	if changes.ProfilePicture != nil {
		updated.ProfilePicture = changes.ProfilePicture
	}
	if changes.Status != nil {
		updated.Status = *changes.Status
	}
	if changes.Role != nil {
		updated.Role = *changes.Role
	}
	if changes.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*changes.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updated.PasswordHash = string(hashed)
	}

	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, translate(err, "update user")
	}

	keys := []string{cache.UserKey(target.ID)}
	if renamed {
		related, err := s.relatedKeys(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, related...)
	}
	s.cache.Invalidate(ctx, keys...)
	return &updated, nil
}

// Delete removes the user. Their insights and feedback survive without an
// author, so those cached representations are dropped too.
func (s *userService) Delete(ctx context.Context, target *model.User) error {
	related, err := s.relatedKeys(ctx, target.ID)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, target); err != nil {
		return translate(err, "delete user")
	}
	s.cache.Invalidate(ctx, append(related, cache.UserKey(target.ID))...)
	logging.Info().Uint("user_id", target.ID).Msg("user deleted")
	return nil
}

// relatedKeys lists cache keys of resources that render the user's name.
func (s *userService) relatedKeys(ctx context.Context, userID uint) ([]string, error) {
	insightIDs, err := s.insights.IDsByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user insights: %w", err)
	}
	feedbackIDs, err := s.feedbacks.IDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user feedback: %w", err)
	}

	keys := make([]string, 0, len(insightIDs)+len(feedbackIDs))
	for _, id := range insightIDs {
		keys = append(keys, cache.InsightKey(id))
	}
	for _, id := range feedbackIDs {
		keys = append(keys, cache.FeedbackKey(id))
	}
	return keys, nil
}

// nonEmpty maps an empty string to nil so blank phones are stored as NULL and
// never collide under the unique index.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
