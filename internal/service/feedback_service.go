package service

import (
	"context"
	"fmt"

	"geometa/internal/cache"
	"geometa/internal/model"
	"geometa/internal/repository"
)

// FeedbackFields is a full replacement of a feedback's editable fields.
type FeedbackFields struct {
	Rating  *int
	Comment *string
}

// FeedbackService exposes feedback operations.
type FeedbackService interface {
	Resolve(ctx context.Context, id uint) (*model.Feedback, error)
	ListByInsight(ctx context.Context, insight *model.Insight) ([]model.Feedback, error)
	ListByUser(ctx context.Context, user *model.User) ([]model.Feedback, error)
	Create(ctx context.Context, author *model.User, insight *model.Insight, fields FeedbackFields) (*model.Feedback, error)
	Update(ctx context.Context, feedback *model.Feedback, fields FeedbackFields) (*model.Feedback, error)
	Delete(ctx context.Context, feedback *model.Feedback) error
}

type feedbackService struct {
	feedbacks repository.FeedbackRepository
	cache     Invalidator
}

// NewFeedbackService builds a FeedbackService. A nil cache disables invalidation.
func NewFeedbackService(feedbacks repository.FeedbackRepository, cache Invalidator) FeedbackService {
	return &feedbackService{feedbacks: feedbacks, cache: orNoop(cache)}
}

func (s *feedbackService) Resolve(ctx context.Context, id uint) (*model.Feedback, error) {
	feedback, err := s.feedbacks.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Feedback not found.", "find feedback")
	}
	return feedback, nil
}

func (s *feedbackService) ListByInsight(ctx context.Context, insight *model.Insight) ([]model.Feedback, error) {
	feedbacks, err := s.feedbacks.ListByInsight(ctx, insight.ID)
	if err != nil {
		return nil, fmt.Errorf("list insight feedback: %w", err)
	}
	return feedbacks, nil
}

func (s *feedbackService) ListByUser(ctx context.Context, user *model.User) ([]model.Feedback, error) {
	feedbacks, err := s.feedbacks.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list user feedback: %w", err)
	}
	return feedbacks, nil
}

// Create stores feedback on insight. The insight's cached average rating is dropped.
func (s *feedbackService) Create(ctx context.Context, author *model.User, insight *model.Insight, fields FeedbackFields) (*model.Feedback, error) {
	feedback := &model.Feedback{
		InsightID: insight.ID,
		Rating:    fields.Rating,
		Comment:   fields.Comment,
		Insight:   insight,
	}
	if author != nil {
		feedback.UserID = &author.ID
		feedback.User = author
	}
	if err := s.feedbacks.Create(ctx, feedback); err != nil {
		return nil, translate(err, "create feedback")
	}
	s.cache.Invalidate(ctx, cache.InsightKey(insight.ID))
	return feedback, nil
}

func (s *feedbackService) Update(ctx context.Context, feedback *model.Feedback, fields FeedbackFields) (*model.Feedback, error) {
	updated := *feedback
	updated.Rating = fields.Rating
	updated.Comment = fields.Comment
	if err := s.feedbacks.Update(ctx, &updated); err != nil {
		return nil, translate(err, "update feedback")
	}
	s.cache.Invalidate(ctx, cache.FeedbackKey(feedback.ID), cache.InsightKey(feedback.InsightID))
	return &updated, nil
}

func (s *feedbackService) Delete(ctx context.Context, feedback *model.Feedback) error {
	if err := s.feedbacks.Delete(ctx, feedback); err != nil {
		return translate(err, "delete feedback")
	}
	s.cache.Invalidate(ctx, cache.FeedbackKey(feedback.ID), cache.InsightKey(feedback.InsightID))
	return nil
}
