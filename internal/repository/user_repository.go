package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"geometa/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Register(ctx context.Context, user *model.User, key *model.ApiKey) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByName(ctx context.Context, usernameOrEmail string) (*model.User, error)
	Taken(ctx context.Context, username, email string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Register inserts the user and its API key in one transaction.
func (r *userRepository) Register(ctx context.Context, user *model.User, key *model.ApiKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		key.UserID = &user.ID
		return tx.Omit(clause.Associations).Create(key).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName looks a user up by username or email.
func (r *userRepository) FindByName(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Taken reports whether another user already holds the username or email.
func (r *userRepository) Taken(ctx context.Context, username, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update saves the user and mirrors its role onto the API key's admin flag
// in the same transaction.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return err
		}
		return tx.Model(&model.ApiKey{}).
			Where("user_id = ?", user.ID).
			Update("admin", user.Role == model.RoleAdmin).Error
	})
}

// Delete removes the user. Foreign keys null out their insights and feedback
// and drop their API key.
func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, user.ID).Error
}
