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

// UserHandler serves the user collection and items.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers godoc
// @Summary List users
// @Description Short form of every user.
// @Tags users
// @Produce application/vnd.mason+json
// @Success 200 {object} view.UserPublicView
// @Router /users/ [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK, view.Users(users))
}

// Register godoc
// @Summary Register user
// @Description Creates a user and returns its API key. The key is shown only once.
// @Tags users
// @Accept json
// @Produce application/vnd.mason+json
// @Param user body RegisterRequest true "User payload"
// @Success 201 {object} view.CreatedUserView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 409 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /users/ [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, token, err := h.users.Register(c.Request().Context(), req.registration())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, paths.User(user.Username))
	return hypermedia.Write(c, http.StatusCreated, view.CreatedUser(user, token))
}

// GetUser godoc
// @Summary Get user
// @Description Private fields are included for the user themself and for admins.
// @Tags users
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param user path string true "Username or email"
// @Success 200 {object} view.UserPrivateView
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /users/{user}/ [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	return hypermedia.Write(c, http.StatusOK, view.User(auth.Caller(c), PathUser(c)))
}

// UpdateUser godoc
// @Summary Update user
// @Description Replaces the user's fields. Only admins may change roles, and not their own.
// @Tags users
// @Accept json
// @Produce application/vnd.mason+json
// @Security ApiKeyAuth
// @Param user path string true "Username or email"
// @Param body body UserUpdateRequest true "User payload"
// @Success 200 {object} view.UserPrivateView
// @Failure 400 {object} hypermedia.ErrorBody
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Failure 409 {object} hypermedia.ErrorBody
// @Failure 415 {object} hypermedia.ErrorBody
// @Router /users/{user}/ [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	caller, target := auth.Caller(c), PathUser(c)
	if err := auth.Authorize(caller, &target.ID, "update this user"); err != nil {
		return err
	}

	var req UserUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	changes, err := req.changes()
	if err != nil {
		return err
	}

	updated, err := h.users.Update(c.Request().Context(), caller, target, changes)
	if err != nil {
		return err
	}
	return hypermedia.Write(c, http.StatusOK, view.User(caller, updated))
}

// DeleteUser godoc
// @Summary Delete user
// @Description Removes the user and their API key. Their insights and feedback remain without an author.
// @Tags users
// @Security ApiKeyAuth
// @Param user path string true "Username or email"
// @Success 204
// @Failure 401 {object} hypermedia.ErrorBody
// @Failure 403 {object} hypermedia.ErrorBody
// @Failure 404 {object} hypermedia.ErrorBody
// @Router /users/{user}/ [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	target := PathUser(c)
	if err := auth.Authorize(auth.Caller(c), &target.ID, "delete this user"); err != nil {
		return err
	}
	if err := h.users.Delete(c.Request().Context(), target); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
