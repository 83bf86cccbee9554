package handler

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "geometa/internal/errors"
	"geometa/internal/model"
	"geometa/internal/service"
)

// RegisterRequest is the body of POST /users/.
type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,max=32"`
	Email     string  `json:"email" validate:"required,email,max=64"`
	Password  string  `json:"password" validate:"required"`
	FirstName string  `json:"first_name" validate:"required,max=32"`
	LastName  string  `json:"last_name" validate:"max=32"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// UserUpdateRequest is the body of PUT /users/{user}/.
type UserUpdateRequest struct {
	Username       string  `json:"username" validate:"required,max=32"`
	Email          string  `json:"email" validate:"required,email,max=64"`
	Password       *string `json:"password" validate:"omitempty,min=1"`
	FirstName      string  `json:"first_name" validate:"required,max=32"`
	LastName       string  `json:"last_name" validate:"max=32"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Status         *string `json:"status"`
	Role           *string `json:"role"`
	ProfilePicture *string `json:"profile_picture"`
}

// InsightRequest is the body of insight POST and PUT.
type InsightRequest struct {
	Title        string   `json:"title" validate:"required,max=128"`
	Description  *string  `json:"description" validate:"omitempty,max=1024"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Image        *string  `json:"image" validate:"omitempty,max=128"`
	Address      *string  `json:"address" validate:"omitempty,max=128"`
	Category     *string  `json:"category" validate:"omitempty,max=64"`
	Subcategory  *string  `json:"subcategory" validate:"omitempty,excluded_without=Category,max=64"`
	ExternalLink *string  `json:"external_link" validate:"omitempty,url,max=512"`
}

// FeedbackRequest is the body of feedback POST and PUT.
type FeedbackRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=512"`
}

// bindJSON requires a JSON content type, then decodes and validates the body.
func bindJSON(c echo.Context, dst interface{}) error {
	mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil || mediaType != echo.MIMEApplicationJSON {
		return apperrors.New(apperrors.ErrUnsupportedMediaType, "Content-Type must be application/json.")
	}

	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusBadRequest {
			return apperrors.Validation("Malformed JSON body.", strings.TrimSpace(toString(he.Message)))
		}
		return apperrors.Validation("Malformed JSON body.")
	}
	return c.Validate(dst)
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func (r RegisterRequest) registration() service.Registration {
	return service.Registration{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

func (r UserUpdateRequest) changes() (service.UserChanges, error) {
	ch := service.UserChanges{
		Username:       r.Username,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Phone:          r.Phone,
		Password:       r.Password,
		ProfilePicture: r.ProfilePicture,
	}
	if r.Status != nil {
		status, err := model.ParseStatus(*r.Status)
		if err != nil {
			return ch, apperrors.Validation("Invalid input.", "status must be one of: "+strings.Join(model.Statuses, " "))
		}
		ch.Status = &status
	}
	if r.Role != nil {
		role, err := model.ParseRole(*r.Role)
		if err != nil {
			return ch, apperrors.Validation("Invalid input.", "role must be one of: "+strings.Join(model.Roles, " "))
		}
		ch.Role = &role
	}
	return ch, nil
}

func (r InsightRequest) fields() service.InsightFields {
	return service.InsightFields{
		Title:        r.Title,
		Description:  r.Description,
		Longitude:    *r.Longitude,
		Latitude:     *r.Latitude,
		Image:        r.Image,
		Address:      r.Address,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		ExternalLink: r.ExternalLink,
	}
}

func (r FeedbackRequest) fields() service.FeedbackFields {
	return service.FeedbackFields{Rating: r.Rating, Comment: r.Comment}
}
