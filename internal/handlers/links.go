package handlers

import (
	"net/http"
	"path"

	"userposts-api/internal/model"
)

// Link is a hypermedia navigation pair embedded in single-resource responses.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// userModel wraps a user with its navigation links. Link shaping stays out of
// the lookup and validation paths so it can change without touching them.
type userModel struct {
	model.User
	Links []Link `json:"_links,omitempty"`
}

// withAllUsersLink wraps the user with a link back to its collection, derived
// from the request path (the "All-Users" relation).
func withAllUsersLink(u model.User, r *http.Request) userModel {
	return userModel{
		User:  u,
		Links: []Link{{Rel: "All-Users", Href: path.Dir(r.URL.Path)}},
	}
}
