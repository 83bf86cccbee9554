package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"geometa/internal/model"
)

// ApiKeyRepository defines API key persistence operations.
type ApiKeyRepository interface {
	Create(ctx context.Context, key *model.ApiKey) error
	FindByHash(ctx context.Context, hash string) (*model.ApiKey, error)
}

type apiKeyRepository struct {
	db *gorm.DB
}

// NewApiKeyRepository creates a new API key repository.
func NewApiKeyRepository(db *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *model.ApiKey) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(key).Error
}

// FindByHash returns the key with its user preloaded.
func (r *apiKeyRepository) FindByHash(ctx context.Context, hash string) (*model.ApiKey, error) {
	var key model.ApiKey
	if err := r.db.WithContext(ctx).Preload("User").
		Where("`key` = ?", hash).First(&key).Error; err != nil {
		return nil, err
	}
	return &key, nil
}
