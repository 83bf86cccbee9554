package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"geometa/internal/auth"
	"geometa/internal/hypermedia"
	"geometa/internal/model"
	"geometa/internal/paths"
	"geometa/internal/service"
	"geometa/internal/view"
)

// InsightHandler serves insight collections and items.
type InsightHandler struct {
	insights service.InsightService
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(insights service.InsightService) *InsightHandler {
	return &InsightHandler{insights: insights}
}

// SearchInsights godoc
// @Summary Search insights
// @Description Requires bbox or usr. Category filters are ANDed.
// @Tags insights
// @Produce application/vnd.mason+json
// @Param bbox query string false "minLon,minLat,maxLon,maxLat"
// @Param usr query string false "Creator username"
// @Param ic query string false "Category"
// @Param isc query string false "Subcategory"
// @Success 200 {object} view.InsightSummaryView
// @Failure 400 {object} hypermedia.ErrorBody
// @Router /insights/ [get]
func (h *InsightHandler) SearchInsights(c echo.Context) error {
	insights, err := h.insights.Search(c.Request().Context(), service.SearchQuery{
		BBox:        c.QueryParam("bbox"),
		Username:    c.QueryParam("usr"),
		Category:    c.QueryParam("ic"),
		Subcategory: c.QueryParam("isc"),
	})
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK, view.Insights(c.Request().URL.RequestURI(), insights))
}

// CreateInsight godoc
// @Summary Create insight
// @Description Anonymous unless a valid API key is sent, in which case the caller is the creator.
// @Tags insights
// @Accept json
// @Produce application/vnd.mason+json
// @Param body body InsightRequest true "Insight payload"
// @Success 201 {object} view.InsightDetailView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /insights/ [post]
func (h *InsightHandler) CreateInsight(c echo.Context) error {
	return h.create(c, auth.Caller(c))
}

// ListUserInsights godoc
// @Summary List a user's insights
// @Tags insights
// @Produce application/vnd.mason+json
// @Param user path string true "Username or email"
// @Success 200 {object} view.InsightSummaryView
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /users/{user}/insights/ [get]
func (h *InsightHandler) ListUserInsights(c echo.Context) error {
	owner := PathUser(c)
	insights, err := h.insights.ListByCreator(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK,
		view.UserInsights(c.Request().URL.Path, auth.Caller(c), owner, insights))
}

// CreateUserInsight godoc
// @Summary Create insight as user
// @Tags insights
// @Accept json
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param user path string true "Username or email"
// @Param body body InsightRequest true "Insight payload"
// @Success 201 {object} view.InsightDetailView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /users/{user}/insights/ [post]
func (h *InsightHandler) CreateUserInsight(c echo.Context) error {
	caller := auth.Caller(c)
	if err := auth.RequireSelf(caller, PathUser(c)); err != nil {
		return err
	}
	return h.create(c, caller)
}

func (h *InsightHandler) create(c echo.Context, creator *model.User) error {
	var req InsightRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	insight, err := h.insights.Create(c.Request().Context(), creator, req.fields())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, paths.Insight(insight.ID))
	return hypermedia.Write(c, http.StatusCreated, view.Insight(auth.Caller(c), insight, nil))
}

// GetInsight godoc
// @Summary Get insight
// @Description Also served under /users/{user}/insights/{insight}/.
// @Tags insights
// @Produce application/vnd.mason+json
// @Param insight path int true "Insight ID"
// @Success 200 {object} view.InsightDetailView
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/ [get]
func (h *InsightHandler) GetInsight(c echo.Context) error {
	return h.render(c, PathInsight(c))
}

// UpdateInsight godoc
// @Summary Update insight
// @Description Replaces every field; omitted optional fields are cleared.
// @Tags insights
// @Accept json
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param insight path int true "Insight ID"
// @Param body body InsightRequest true "Insight payload"
// @Success 200 {object} view.InsightDetailView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/ [put]
func (h *InsightHandler) UpdateInsight(c echo.Context) error {
	insight := PathInsight(c)
	if err := auth.Authorize(auth.Caller(c), insight.CreatorID, "update this insight"); err != nil {
		return err
	}

	var req InsightRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	updated, err := h.insights.Update(c.Request().Context(), insight, req.fields())
	if err != nil {
		return err
	}
	return h.render(c, updated)
}

// DeleteInsight godoc
// @Summary Delete insight
// @Description Removes the insight and all feedback on it.
// @Tags insights
// @Security ApiKeyAuth
// @Param insight path int true "Insight ID"
// @Success 204
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /insights/{insight}/ [delete]
func (h *InsightHandler) DeleteInsight(c echo.Context) error {
	insight := PathInsight(c)
	if err := auth.Authorize(auth.Caller(c), insight.CreatorID, "delete this insight"); err != nil {
		return err
	}
	if err := h.insights.Delete(c.Request().Context(), insight); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InsightHandler) render(c echo.Context, insight *model.Insight) error {
	avg, err := h.insights.AverageRating(c.Request().Context(), insight.ID)
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK, view.Insight(auth.Caller(c), insight, avg))
}
