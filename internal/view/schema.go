package view

import (
	"geometa/internal/hypermedia"
	"geometa/internal/model"
)

func userProperties() map[string]*hypermedia.Schema {
	email := hypermedia.String(64)
	email.Format = "email"
	return map[string]*hypermedia.Schema{
		"username":        hypermedia.String(32),
		"email":           email,
		"phone":           hypermedia.String(20),
		"password":        hypermedia.String(0),
		"first_name":      hypermedia.String(32),
		"last_name":       hypermedia.String(32),
		"status":          hypermedia.Enum(model.Statuses...),
		"role":            hypermedia.Enum(model.Roles...),
		"profile_picture": hypermedia.String(0),
	}
}

// UserSchema describes the registration payload.
func UserSchema() *hypermedia.Schema {
	return &hypermedia.Schema{
		Type:       "object",
		Required:   []string{"username", "email", "password", "first_name"},
		Properties: userProperties(),
	}
}

// UserUpdateSchema describes the PUT payload; the password may be left out.
func UserUpdateSchema() *hypermedia.Schema {
	return &hypermedia.Schema{
		Type:       "object",
		Required:   []string{"username", "email", "first_name"},
		Properties: userProperties(),
	}
}

func InsightSchema() *hypermedia.Schema {
	link := hypermedia.String(512)
	link.Format = "uri"
	return &hypermedia.Schema{
		Type:     "object",
		Required: []string{"title", "longitude", "latitude"},
		Properties: map[string]*hypermedia.Schema{
			"title":         hypermedia.String(128),
			"description":   hypermedia.String(1024),
			"longitude":     hypermedia.Number(-180, 180),
			"latitude":      hypermedia.Number(-90, 90),
			"image":         hypermedia.String(128),
			"address":       hypermedia.String(128),
			"category":      hypermedia.String(64),
			"subcategory":   {Type: "string", MaxLength: 64, Description: "Requires category."},
			"external_link": link,
		},
	}
}

func FeedbackSchema() *hypermedia.Schema {
	return &hypermedia.Schema{
		Type: "object",
		Properties: map[string]*hypermedia.Schema{
			"rating":  hypermedia.Integer(1, 5),
			"comment": hypermedia.String(512),
		},
	}
}
