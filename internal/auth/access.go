package auth

import (
	apperrors "geometa/internal/errors"
	"geometa/internal/model"
)

// Tier is the access level of a caller relative to one resource.
type Tier int

const (
	TierAnonymous Tier = iota
	TierAuthenticated
	TierOwnerOrAdmin
)

func (t Tier) String() string {
	switch t {
	case TierAuthenticated:
		return "authenticated"
	case TierOwnerOrAdmin:
		return "owner-or-admin"
	default:
		return "anonymous"
	}
}

// IsOwnerOrAdmin reports whether user owns the resource owned by ownerID or is
// an admin. A nil ownerID means nobody owns it, so only admins qualify.
func IsOwnerOrAdmin(user *model.User, ownerID *uint) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return ownerID != nil && *ownerID == user.ID
}

// TierFor computes the caller's tier for a resource owned by ownerID.
func TierFor(user *model.User, ownerID *uint) Tier {
	switch {
	case user == nil:
		return TierAnonymous
	case IsOwnerOrAdmin(user, ownerID):
		return TierOwnerOrAdmin
	default:
		return TierAuthenticated
	}
}

// Authorize gates write access: anonymous callers get ErrUnauthorized,
// authenticated non-owners get ErrForbidden.
func Authorize(user *model.User, ownerID *uint, action string) error {
	if user == nil {
		return apperrors.Unauthorized("A valid API key is required.")
	}
	if !IsOwnerOrAdmin(user, ownerID) {
		return apperrors.Forbidden("You are not authorized to " + action + ".")
	}
	return nil
}

// RequireSelf gates creation under a user path: the caller must be that user.
func RequireSelf(user *model.User, pathUser *model.User) error {
	if user == nil {
		return apperrors.Unauthorized("A valid API key is required.")
	}
	if pathUser == nil || user.ID != pathUser.ID {
		return apperrors.Forbidden("You can only create resources under your own user.")
	}
	return nil
}
