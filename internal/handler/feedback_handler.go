package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"geometa/internal/auth"
	"geometa/internal/hypermedia"
	"geometa/internal/paths"
	"geometa/internal/service"
	"geometa/internal/view"
)

// FeedbackHandler serves feedback collections and items.
type FeedbackHandler struct {
	feedbacks service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbacks service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks}
}

// ListInsightFeedbacks godoc
// @Summary List feedback on an insight
// @Description Also served under /users/{user}/insights/{insight}/feedbacks/.
// @Tags feedbacks
// @Produce application/vnd.mason+json
// @Param insight path int true "Insight ID"
// @Success 200 {object} view.FeedbackView
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/feedbacks/ [get]
func (h *FeedbackHandler) ListInsightFeedbacks(c echo.Context) error {
	insight := PathInsight(c)
	feedbacks, err := h.feedbacks.ListByInsight(c.Request().Context(), insight)
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK,
		view.InsightFeedbacks(c.Request().URL.Path, auth.Caller(c), insight, feedbacks))
}

// CreateFeedback godoc
// @Summary Leave feedback
// @Description The caller must be the user in the path.
// @Tags feedbacks
// @Accept json
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param user path string true "Username or email"
// @Param insight path int true "Insight ID"
// @Param body body FeedbackRequest true "Feedback payload"
// @Success 201 {object} view.FeedbackView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /users/{user}/insights/{insight}/feedbacks/ [post]
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	caller := auth.Caller(c)
	if err := auth.RequireSelf(caller, PathUser(c)); err != nil {
		return err
	}

	var req FeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	feedback, err := h.feedbacks.Create(c.Request().Context(), caller, PathInsight(c), req.fields())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, paths.InsightFeedback(feedback.InsightID, feedback.ID))
	return hypermedia.Write(c, http.StatusCreated, view.Feedback(caller, feedback))
}

// ListUserFeedbacks godoc
// @Summary List a user's feedback
// @Description Visible to the user themself and to admins.
// @Tags feedbacks
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param user path string true "Username or email"
// @Success 200 {object} view.FeedbackView
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /users/{user}/feedbacks/ [get]
func (h *FeedbackHandler) ListUserFeedbacks(c echo.Context) error {
	owner := PathUser(c)
	if err := auth.Authorize(auth.Caller(c), &owner.ID, "view this user's feedback"); err != nil {
		return err
	}
	feedbacks, err := h.feedbacks.ListByUser(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK, view.UserFeedbacks(c.Request().URL.Path, owner, feedbacks))
}

// GetFeedback godoc
// @Summary Get feedback
// @Description Also served under the user and user-insight paths.
// @Tags feedbacks
// @Produce application/vnd.mason+json
// @Param insight path int true "Insight ID"
// @Param feedback path int true "Feedback ID"
// @Success 200 {object} view.FeedbackView
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/feedbacks/{feedback}/ [get]
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	return hypermedia.Write(c, http.StatusOK, view.Feedback(auth.Caller(c), PathFeedback(c)))
}

// UpdateFeedback godoc
// @Summary Update feedback
// @Tags feedbacks
// @Accept json
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param insight path int true "Insight ID"
// @Param feedback path int true "Feedback ID"
// @Param body body FeedbackRequest true "Feedback payload"
// @Success 200 {object} view.FeedbackView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/feedbacks/{feedback}/ [put]
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	caller, feedback := auth.Caller(c), PathFeedback(c)
	if err := auth.Authorize(caller, feedback.UserID, "update this feedback"); err != nil {
		return err
	}

	var req FeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	updated, err := h.feedbacks.Update(c.Request().Context(), feedback, req.fields())
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK, view.Feedback(caller, updated))
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Tags feedbacks
// @Security ApiKeyAuth
// @Param insight path int true "Insight ID"
// @Param feedback path int true "Feedback ID"
// @Success 204
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/feedbacks/{feedback}/ [delete]
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	feedback := PathFeedback(c)
	if err := auth.Authorize(auth.Caller(c), feedback.UserID, "delete this feedback"); err != nil {
		return err
	}
	if err := h.feedbacks.Delete(c.Request().Context(), feedback); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
