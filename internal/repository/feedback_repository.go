package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"geometa/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	FindByID(ctx context.Context, id uint) (*model.Feedback, error)
	ListByInsight(ctx context.Context, insightID uint) ([]model.Feedback, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error)
	IDsByUser(ctx context.Context, userID uint) ([]uint, error)
	IDsByInsight(ctx context.Context, insightID uint) ([]uint, error)
	Update(ctx context.Context, feedback *model.Feedback) error
	Delete(ctx context.Context, feedback *model.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error
}

// FindByID finds a feedback with its author and insight preloaded.
func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).Preload("User").Preload("Insight").
		First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByInsight(ctx context.Context, insightID uint) ([]model.Feedback, error) {
	return r.list(ctx, "insight_id = ?", insightID)
}

func (r *feedbackRepository) ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *feedbackRepository) list(ctx context.Context, query string, arg interface{}) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	if err := r.db.WithContext(ctx).Preload("User").Preload("Insight").
		Where(query, arg).Order("id").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) IDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	return r.ids(ctx, "user_id = ?", userID)
}

func (r *feedbackRepository) IDsByInsight(ctx context.Context, insightID uint) ([]uint, error) {
	return r.ids(ctx, "insight_id = ?", insightID)
}

func (r *feedbackRepository) ids(ctx context.Context, query string, arg interface{}) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where(query, arg).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(feedback).Error
}

func (r *feedbackRepository) Delete(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, feedback.ID).Error
}
