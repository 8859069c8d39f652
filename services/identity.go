package services

import "inkwell/models"

// Identity is the acting user resolved from the session token. It is passed
// explicitly into every operation that needs to know who the caller is; the
// services never read it from ambient state.
type Identity struct {
	UserID   string
	Name     string
	Username string
	Image    string
}

// NewIdentity builds an Identity from a stored user.
func NewIdentity(u models.User) Identity {
	return Identity{
		UserID:   u.ID.Hex(),
		Name:     u.Name,
		Username: u.Username,
		Image:    u.Image,
	}
}

// canMutate reports whether the acting user owns the post. Edit and delete
// use the same rule.
func canMutate(p *models.Post, userID string) bool {
	return p.AuthorID == userID
}
