package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"geometa/internal/cache"
	apperrors "geometa/internal/errors"
	"geometa/internal/middleware"
	"geometa/internal/model"
	"geometa/internal/service"
)

const (
	pathUserKey     = "path_user"
	pathInsightKey  = "path_insight"
	pathFeedbackKey = "path_feedback"
)

// Resolver turns path identifiers into entities before a handler runs, so
// a missing resource is a 404 regardless of who is asking.
type Resolver struct {
	users     service.UserService
	insights  service.InsightService
	feedbacks service.FeedbackService
}

// NewResolver creates the path resolver middlewares.
func NewResolver(users service.UserService, insights service.InsightService, feedbacks service.FeedbackService) *Resolver {
	return &Resolver{users: users, insights: insights, feedbacks: feedbacks}
}

// User resolves :user by username or email.
func (r *Resolver) User(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := r.users.Resolve(c.Request().Context(), c.Param("user"))
		if err != nil {
			return err
		}
		c.Set(pathUserKey, user)
		middleware.SetResourceKey(c, cache.UserKey(user.ID))
		return next(c)
	}
}

// Insight resolves :insight by id. Under a user path the user is the acting
// author, not necessarily the insight's creator.
func (r *Resolver) Insight(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("insight"))
		if err != nil {
			return apperrors.NotFound("Insight not found.")
		}
		insight, err := r.insights.Resolve(c.Request().Context(), id)
		if err != nil {
			return err
		}
		c.Set(pathInsightKey, insight)
		middleware.SetResourceKey(c, cache.InsightKey(insight.ID))
		return next(c)
	}
}

// Feedback resolves :feedback by id. Under an insight path the feedback must
// belong to that insight; under a user's feedback path it must be theirs.
func (r *Resolver) Feedback(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("feedback"))
		if err != nil {
			return apperrors.NotFound("Feedback not found.")
		}
		feedback, err := r.feedbacks.Resolve(c.Request().Context(), id)
		if err != nil {
			return err
		}

		if insight := PathInsight(c); insight != nil {
			if feedback.InsightID != insight.ID {
				return apperrors.NotFound("Feedback not found.")
			}
		} else if user := PathUser(c); user != nil {
			if feedback.UserID == nil || *feedback.UserID != user.ID {
				return apperrors.NotFound("Feedback not found.")
			}
		}

		c.Set(pathFeedbackKey, feedback)
		middleware.SetResourceKey(c, cache.FeedbackKey(feedback.ID))
		return next(c)
	}
}

func PathUser(c echo.Context) *model.User {
	u, _ := c.Get(pathUserKey).(*model.User)
	return u
}

func PathInsight(c echo.Context) *model.Insight {
	i, _ := c.Get(pathInsightKey).(*model.Insight)
	return i
}

func PathFeedback(c echo.Context) *model.Feedback {
	f, _ := c.Get(pathFeedbackKey).(*model.Feedback)
	return f
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.NotFound("not found")
	}
	return uint(id), nil
}
