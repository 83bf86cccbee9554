// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"geometa/internal/model"
	"geometa/internal/repository"
)

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.ApiKeyRepository   = (*ApiKeyRepository)(nil)
	_ repository.InsightRepository  = (*InsightRepository)(nil)
	_ repository.FeedbackRepository = (*FeedbackRepository)(nil)
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Register(ctx context.Context, user *model.User, key *model.ApiKey) error {
	args := m.Called(ctx, user, key)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) FindByName(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) Taken(ctx context.Context, username, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, username, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// ApiKeyRepository is a mock implementation of repository.ApiKeyRepository.
type ApiKeyRepository struct {
	mock.Mock
}

func (m *ApiKeyRepository) Create(ctx context.Context, key *model.ApiKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *ApiKeyRepository) FindByHash(ctx context.Context, hash string) (*model.ApiKey, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ApiKey), args.Error(1)
}

// InsightRepository is a mock implementation of repository.InsightRepository.
type InsightRepository struct {
	mock.Mock
}

func (m *InsightRepository) Create(ctx context.Context, insight *model.Insight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

func (m *InsightRepository) FindByID(ctx context.Context, id uint) (*model.Insight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Insight), args.Error(1)
}

func (m *InsightRepository) Search(ctx context.Context, filter repository.InsightFilter) ([]model.Insight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Insight), args.Error(1)
}

func (m *InsightRepository) IDsByCreator(ctx context.Context, creatorID uint) ([]uint, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *InsightRepository) RatingStats(ctx context.Context, insightID uint) (model.RatingStats, error) {
	args := m.Called(ctx, insightID)
	return args.Get(0).(model.RatingStats), args.Error(1)
}

func (m *InsightRepository) Update(ctx context.Context, insight *model.Insight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

func (m *InsightRepository) Delete(ctx context.Context, insight *model.Insight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

// FeedbackRepository is a mock implementation of repository.FeedbackRepository.
type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *FeedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *FeedbackRepository) ListByInsight(ctx context.Context, insightID uint) ([]model.Feedback, error) {
	args := m.Called(ctx, insightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

func (m *FeedbackRepository) ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

func (m *FeedbackRepository) IDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *FeedbackRepository) IDsByInsight(ctx context.Context, insightID uint) ([]uint, error) {
	args := m.Called(ctx, insightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *FeedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *FeedbackRepository) Delete(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}
