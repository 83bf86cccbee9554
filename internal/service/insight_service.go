package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"geometa/internal/cache"
	apperrors "geometa/internal/errors"
	"geometa/internal/model"
	"geometa/internal/repository"
)

// InsightFields is a full replacement of an insight's editable fields.
type InsightFields struct {
	Title        string
	Description  *string
	Longitude    float64
	Latitude     float64
	Image        *string
	Address      *string
	Category     *string
	Subcategory  *string
	ExternalLink *string
}

// SearchQuery holds the raw query parameters of an insight search.
type SearchQuery struct {
	BBox        string
	Username    string
	Category    string
	Subcategory string
}

// InsightService exposes insight operations.
type InsightService interface {
	Resolve(ctx context.Context, id uint) (*model.Insight, error)
	Search(ctx context.Context, q SearchQuery) ([]model.Insight, error)
	ListByCreator(ctx context.Context, creator *model.User) ([]model.Insight, error)
	AverageRating(ctx context.Context, insightID uint) (*decimal.Decimal, error)
	Create(ctx context.Context, creator *model.User, fields InsightFields) (*model.Insight, error)
	Update(ctx context.Context, insight *model.Insight, fields InsightFields) (*model.Insight, error)
	Delete(ctx context.Context, insight *model.Insight) error
}

type insightService struct {
	insights  repository.InsightRepository
	feedbacks repository.FeedbackRepository
	cache     Invalidator
}

// NewInsightService builds an InsightService. A nil cache disables invalidation.
func NewInsightService(insights repository.InsightRepository, feedbacks repository.FeedbackRepository, cache Invalidator) InsightService {
	return &insightService{insights: insights, feedbacks: feedbacks, cache: orNoop(cache)}
}

// ParseBBox parses "minLon,minLat,maxLon,maxLat". Any four finite numbers
// are accepted; an inverted or oversized box simply matches nothing or
// everything.
func ParseBBox(s string) (*repository.BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, apperrors.Validation("Invalid bbox.", "bbox must be minLon,minLat,maxLon,maxLat")
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, apperrors.Validation("Invalid bbox.", fmt.Sprintf("%q is not a number", p))
		}
		v[i] = f
	}
	return &repository.BBox{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}, nil
}

func (s *insightService) Resolve(ctx context.Context, id uint) (*model.Insight, error) {
	insight, err := s.insights.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Insight not found.", "find insight")
	}
	return insight, nil
}

// Search requires a bbox or a username; category filters are ANDed on top.
func (s *insightService) Search(ctx context.Context, q SearchQuery) ([]model.Insight, error) {
	if q.BBox == "" && q.Username == "" {
		return nil, apperrors.Validation("Missing filter.", "either bbox or usr query parameter is required")
	}
	filter := repository.InsightFilter{
		Username:    q.Username,
		Category:    q.Category,
		Subcategory: q.Subcategory,
	}
	if q.BBox != "" {
		box, err := ParseBBox(q.BBox)
		if err != nil {
			return nil, err
		}
		filter.BBox = box
	}

	insights, err := s.insights.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search insights: %w", err)
	}
	return insights, nil
}

func (s *insightService) ListByCreator(ctx context.Context, creator *model.User) ([]model.Insight, error) {
	insights, err := s.insights.Search(ctx, repository.InsightFilter{CreatorID: &creator.ID})
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	return insights, nil
}

// AverageRating returns the mean of non-null ratings rounded half away from
// zero to one decimal, or nil when nothing has been rated.
func (s *insightService) AverageRating(ctx context.Context, insightID uint) (*decimal.Decimal, error) {
	stats, err := s.insights.RatingStats(ctx, insightID)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	if stats.Count == 0 {
		return nil, nil
	}
	avg := decimal.NewFromInt(stats.Sum).
		DivRound(decimal.NewFromInt(stats.Count), 1)
	return &avg, nil
}

// Create stores a new insight. A nil creator makes it anonymous.
func (s *insightService) Create(ctx context.Context, creator *model.User, fields InsightFields) (*model.Insight, error) {
	insight := &model.Insight{}
	apply(insight, fields)
	if creator != nil {
		insight.CreatorID = &creator.ID
		insight.Creator = creator
	}
	if err := s.insights.Create(ctx, insight); err != nil {
		return nil, translate(err, "create insight")
	}
	return insight, nil
}

func (s *insightService) Update(ctx context.Context, insight *model.Insight, fields InsightFields) (*model.Insight, error) {
	updated := *insight
	apply(&updated, fields)
	if err := s.insights.Update(ctx, &updated); err != nil {
		return nil, translate(err, "update insight")
	}
	s.cache.Invalidate(ctx, cache.InsightKey(insight.ID))
	return &updated, nil
}

// Delete removes the insight and, through the store, its feedback.
func (s *insightService) Delete(ctx context.Context, insight *model.Insight) error {
	feedbackIDs, err := s.feedbacks.IDsByInsight(ctx, insight.ID)
	if err != nil {
		return fmt.Errorf("list insight feedback: %w", err)
	}
	if err := s.insights.Delete(ctx, insight); err != nil {
		return translate(err, "delete insight")
	}

	keys := []string{cache.InsightKey(insight.ID)}
	for _, id := range feedbackIDs {
		keys = append(keys, cache.FeedbackKey(id))
	}
	s.cache.Invalidate(ctx, keys...)
	return nil
}

func apply(insight *model.Insight, f InsightFields) {
	insight.Title = f.Title
	insight.Description = f.Description
	insight.Longitude = f.Longitude
	insight.Latitude = f.Latitude
	insight.Image = f.Image
	insight.Address = f.Address
	insight.Category = f.Category
	insight.Subcategory = f.Subcategory
	insight.ExternalLink = f.ExternalLink
}
