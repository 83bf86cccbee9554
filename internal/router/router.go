package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"geometa/internal/auth"
	apperrors "geometa/internal/errors"
	"geometa/internal/handler"
	"geometa/internal/hypermedia"
	"geometa/internal/logging"
	"geometa/internal/middleware"
	"geometa/internal/paths"
	"geometa/internal/validation"
)

// Handlers groups everything the API routes dispatch to.
type Handlers struct {
	Resolver  *handler.Resolver
	Users     *handler.UserHandler
	Insights  *handler.InsightHandler
	Feedbacks *handler.FeedbackHandler
}

// Register wires routes and middleware. store may be nil to disable the
// response cache.
func Register(e *echo.Echo, h Handlers, authn auth.Authenticator, store middleware.ResponseStore) {
	e.HideBanner = true
	e.JSONSerializer = JSONSerializer{}
	e.Validator = &CustomValidator{}
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(echomw.AddTrailingSlashWithConfig(echomw.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, paths.Base+"/") &&
				c.Request().URL.Path != paths.Base
		},
	}))
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Identity(authn))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var (
		r       = h.Resolver
		cached  = middleware.ResponseCache(store)
		byUser  = []echo.MiddlewareFunc{r.User}
		item    = func(mw ...echo.MiddlewareFunc) []echo.MiddlewareFunc { return append(mw, cached) }
		mws     = func(mw ...echo.MiddlewareFunc) []echo.MiddlewareFunc { return mw }
		api     = e.Group(paths.Base)
		users   = api.Group("/users")
		insight = api.Group("/insights")
	)

	users.GET("/", h.Users.ListUsers)
	users.POST("/", h.Users.Register)
	users.GET("/:user/", h.Users.GetUser, item(r.User)...)
	users.PUT("/:user/", h.Users.UpdateUser, byUser...)
	users.DELETE("/:user/", h.Users.DeleteUser, byUser...)

	users.GET("/:user/insights/", h.Insights.ListUserInsights, byUser...)
	users.POST("/:user/insights/", h.Insights.CreateUserInsight, byUser...)
	users.GET("/:user/insights/:insight/", h.Insights.GetInsight, item(r.User, r.Insight)...)
	users.PUT("/:user/insights/:insight/", h.Insights.UpdateInsight, mws(r.User, r.Insight)...)
	users.DELETE("/:user/insights/:insight/", h.Insights.DeleteInsight, mws(r.User, r.Insight)...)

	users.GET("/:user/insights/:insight/feedbacks/", h.Feedbacks.ListInsightFeedbacks, mws(r.User, r.Insight)...)
	users.POST("/:user/insights/:insight/feedbacks/", h.Feedbacks.CreateFeedback, mws(r.User, r.Insight)...)
	users.GET("/:user/insights/:insight/feedbacks/:feedback/", h.Feedbacks.GetFeedback, item(r.User, r.Insight, r.Feedback)...)
	users.PUT("/:user/insights/:insight/feedbacks/:feedback/", h.Feedbacks.UpdateFeedback, mws(r.User, r.Insight, r.Feedback)...)
	users.DELETE("/:user/insights/:insight/feedbacks/:feedback/", h.Feedbacks.DeleteFeedback, mws(r.User, r.Insight, r.Feedback)...)

	users.GET("/:user/feedbacks/", h.Feedbacks.ListUserFeedbacks, byUser...)
	users.GET("/:user/feedbacks/:feedback/", h.Feedbacks.GetFeedback, item(r.User, r.Feedback)...)
	users.PUT("/:user/feedbacks/:feedback/", h.Feedbacks.UpdateFeedback, mws(r.User, r.Feedback)...)
	users.DELETE("/:user/feedbacks/:feedback/", h.Feedbacks.DeleteFeedback, mws(r.User, r.Feedback)...)

	insight.GET("/", h.Insights.SearchInsights)
	insight.POST("/", h.Insights.CreateInsight)
	insight.GET("/:insight/", h.Insights.GetInsight, item(r.Insight)...)
	insight.PUT("/:insight/", h.Insights.UpdateInsight, r.Insight)
	insight.DELETE("/:insight/", h.Insights.DeleteInsight, r.Insight)

	insight.GET("/:insight/feedbacks/", h.Feedbacks.ListInsightFeedbacks, r.Insight)
	insight.GET("/:insight/feedbacks/:feedback/", h.Feedbacks.GetFeedback, item(r.Insight, r.Feedback)...)
	insight.PUT("/:insight/feedbacks/:feedback/", h.Feedbacks.UpdateFeedback, r.Insight, r.Feedback)
	insight.DELETE("/:insight/feedbacks/:feedback/", h.Feedbacks.DeleteFeedback, r.Insight, r.Feedback)
}

// ErrorHandler renders every failure, routing errors included, as a Mason
// error document.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message, details := describe(err)
	if status >= http.StatusInternalServerError {
		logging.Error().Err(err).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")
	}

	req := c.Request()
	if req.Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = hypermedia.Write(c, status, hypermedia.NewError(status, req.Method, req.URL.Path, message, details...))
	}
	if err != nil {
		logging.Error().Err(err).Msg("writing error response")
	}
}

func describe(err error) (int, string, []string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message, _ := he.Message.(string)
		switch {
		case he.Code == http.StatusNotFound:
			message = "Resource not found."
		case he.Code == http.StatusMethodNotAllowed:
			message = "Method not allowed."
		case he.Code >= http.StatusInternalServerError || message == "":
			message = http.StatusText(he.Code)
		}
		return he.Code, message, nil
	}

	mapped := apperrors.MapErrorToHTTP(err)
	return mapped.StatusCode, mapped.Message, mapped.Details
}

// CustomValidator adapts the shared validator to echo.
type CustomValidator struct{}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	messages, err := validation.Struct(i)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return apperrors.Validation("Invalid input.", messages...)
	}
	return nil
}
