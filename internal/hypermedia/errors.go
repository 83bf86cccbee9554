package hypermedia

import (
	"net/http"

	"geometa/internal/paths"
)

// NewError builds the error envelope for a failed request. The controls
// offered depend on the status: login on 401, home on 403, retry on 400.
func NewError(status int, method, path, message string, details ...string) *Document {
	d := New("error").
		AddNamespace("error", ProfileError).
		SetError(message, details...).
		Link("profile", ProfileError).
		Link("self", path)

	switch status {
	case http.StatusUnauthorized:
		d.AddControl("auth:login", Control{
			Href:     paths.Users(),
			Method:   http.MethodPost,
			Encoding: "json",
			Title:    "Register to obtain an API key",
		})
	case http.StatusForbidden:
		d.Link("home", paths.Insights())
	case http.StatusBadRequest:
		d.AddControl("retry", Control{Href: path, Method: method})
	}
	return d
}
