package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"geometa/internal/model"
)

// BBox is a longitude/latitude bounding box.
type BBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// InsightFilter narrows an insight search. Set fields are ANDed.
type InsightFilter struct {
	BBox        *BBox
	Username    string
	CreatorID   *uint
	Category    string
	Subcategory string
}

// InsightRepository defines insight persistence operations.
type InsightRepository interface {
	Create(ctx context.Context, insight *model.Insight) error
	FindByID(ctx context.Context, id uint) (*model.Insight, error)
	Search(ctx context.Context, filter InsightFilter) ([]model.Insight, error)
	IDsByCreator(ctx context.Context, creatorID uint) ([]uint, error)
	RatingStats(ctx context.Context, insightID uint) (model.RatingStats, error)
	Update(ctx context.Context, insight *model.Insight) error
	Delete(ctx context.Context, insight *model.Insight) error
}

type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository.
func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(ctx context.Context, insight *model.Insight) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(insight).Error
}

// FindByID finds an insight by ID with its creator preloaded.
func (r *insightRepository) FindByID(ctx context.Context, id uint) (*model.Insight, error) {
	var insight model.Insight
	if err := r.db.WithContext(ctx).Preload("Creator").First(&insight, id).Error; err != nil {
		return nil, err
	}
	return &insight, nil
}

// Search returns matching insights ordered by ID.
func (r *insightRepository) Search(ctx context.Context, filter InsightFilter) ([]model.Insight, error) {
	q := r.db.WithContext(ctx).Model(&model.Insight{}).Preload("Creator")

	if b := filter.BBox; b != nil {
		q = q.Where("insights.longitude BETWEEN ? AND ? AND insights.latitude BETWEEN ? AND ?",
			b.MinLon, b.MaxLon, b.MinLat, b.MaxLat)
	}
	if filter.Username != "" {
		q = q.Joins("JOIN users ON users.id = insights.creator").
			Where("users.username = ?", filter.Username)
	}
	if filter.CreatorID != nil {
		q = q.Where("insights.creator = ?", *filter.CreatorID)
	}
	if filter.Category != "" {
		q = q.Where("insights.category = ?", filter.Category)
	}
	if filter.Subcategory != "" {
		q = q.Where("insights.subcategory = ?", filter.Subcategory)
	}

	var insights []model.Insight
	if err := q.Order("insights.id").Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (r *insightRepository) IDsByCreator(ctx context.Context, creatorID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Insight{}).
		Where("creator = ?", creatorID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// RatingStats sums and counts the non-null ratings of an insight.
func (r *insightRepository) RatingStats(ctx context.Context, insightID uint) (model.RatingStats, error) {
	var stats model.RatingStats
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Select("COALESCE(SUM(rating), 0) AS sum, COUNT(rating) AS count").
		Where("insight_id = ?", insightID).
		Scan(&stats).Error
	return stats, err
}

func (r *insightRepository) Update(ctx context.Context, insight *model.Insight) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(insight).Error
}

// Delete removes the insight; its feedback goes with it via ON DELETE CASCADE.
func (r *insightRepository) Delete(ctx context.Context, insight *model.Insight) error {
	return r.db.WithContext(ctx).Delete(&model.Insight{}, insight.ID).Error
}
