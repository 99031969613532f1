// Package actor carries the authenticated caller into service operations.
// Handlers build it from verified token claims and pass it explicitly.
package actor

import "github.com/kidaholy/human-resource-sub000/internal/directory"

type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == directory.RoleAdmin
}

func (a Actor) Valid() bool {
	return a.UserID != "" && a.Role != ""
}
