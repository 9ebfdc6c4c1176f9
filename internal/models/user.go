package models

import "strings"

// Role represents the role of an authenticated user
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// User is the authenticated account as returned by GET /auth/me
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Lastname string `json:"lastname,omitempty"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the user may access admin pages
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName joins name and lastname
func (u User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Lastname)
}

// DisplayName returns the name to greet the user with
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
