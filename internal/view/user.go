package view

import (
	"time"

	"geometa/internal/auth"
	"geometa/internal/hypermedia"
	"geometa/internal/model"
	"geometa/internal/paths"
)

// UserPublicView is what anyone may see of a user.
type UserPublicView struct {
	Username            string     `json:"username"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Role                model.Role `json:"role"`
	ProfilePictureThumb *string    `json:"profile_picture_thumb"`
}

// UserPrivateView adds the fields visible to the user and to admins.
type UserPrivateView struct {
	UserPublicView
	Email          string       `json:"email"`
	Phone          *string      `json:"phone"`
	Status         model.Status `json:"status"`
	CreatedDate    time.Time    `json:"created_date"`
	ModifiedDate   time.Time    `json:"modified_date"`
	ProfilePicture *string      `json:"profile_picture"`
}

// CreatedUserView is returned once, on registration.
type CreatedUserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	ApiKey   string `json:"api_key"`
}

func NewUserPublicView(u *model.User) UserPublicView {
	return UserPublicView{
		Username:            u.Username,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Role:                u.Role,
		ProfilePictureThumb: u.ProfilePictureThumb,
	}
}

func NewUserPrivateView(u *model.User) UserPrivateView {
	return UserPrivateView{
		UserPublicView: NewUserPublicView(u),
		Email:          u.Email,
		Phone:          u.Phone,
		Status:         u.Status,
		CreatedDate:    u.CreatedAt,
		ModifiedDate:   u.UpdatedAt,
		ProfilePicture: u.ProfilePicture,
	}
}

// User renders u for caller. Private fields and the edit/delete controls
// appear only for the user themself and for admins.
func User(caller, u *model.User) *hypermedia.Document {
	self := paths.User(u.Username)
	private := auth.IsOwnerOrAdmin(caller, &u.ID)

	doc := hypermedia.New("user").AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations)
	if private {
		doc.WithData(NewUserPrivateView(u))
	} else {
		doc.WithData(NewUserPublicView(u))
	}

	doc.Link("self", self).
		Link("profile", hypermedia.ProfileUser).
		Link("collection", paths.Users()).
		Get("geometa:insights-by", "Insights created by this user", paths.UserInsights(u.Username))

	if private {
		doc.Get("geometa:feedbacks-by", "Feedback left by this user", paths.UserFeedbacks(u.Username))
		if caller.ID == u.ID {
			doc.Post("geometa:add-insight", "Add a new insight", paths.UserInsights(u.Username), InsightSchema())
		}
		doc.Edit("Edit this user", self, UserUpdateSchema()).
			Delete("Delete this user", self)
	}
	return doc
}

// Users renders the user collection in short form.
func Users(users []model.User) *hypermedia.Document {
	doc := hypermedia.New("users").
		AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations).
		WithItems()

	for i := range users {
		u := &users[i]
		doc.AddItem(hypermedia.New("user").
			WithData(NewUserPublicView(u)).
			Link("self", paths.User(u.Username)).
			Link("profile", hypermedia.ProfileUser))
	}

	return doc.Link("self", paths.Users()).
		Post("geometa:add-user", "Register a new user", paths.Users(), UserSchema())
}

// CreatedUser renders a freshly registered user with its one-time API key.
func CreatedUser(u *model.User, apiKey string) *hypermedia.Document {
	return hypermedia.New("user").
		WithData(CreatedUserView{ID: u.ID, Username: u.Username, Email: u.Email, ApiKey: apiKey}).
		AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations).
		Link("self", paths.User(u.Username)).
		Link("profile", hypermedia.ProfileUser).
		Link("collection", paths.Users())
}
