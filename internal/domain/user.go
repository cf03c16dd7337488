package domain

import "time"

type UserRole string

const UserRoleViewer UserRole = "viewer"
const UserRoleEditor UserRole = "editor"

// User is an authenticated identity. Role gates access to mutations:
// editors may create, update, and delete articles; viewers may only read.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u User) IsEditor() bool {
	return u.Role == UserRoleEditor
}

// Credential pairs a user with the bcrypt hash of their password.
type Credential struct {
	User         User
	PasswordHash string
}

// Session is an issued login session, looked up by the SHA-256 hash of its
// bearer token. The plaintext token is only ever held by the client.
type Session struct {
	ID        string
	TokenHash string
	User      User
	CreatedAt time.Time
}
