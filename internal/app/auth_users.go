package app

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jbeshir/article-manager/internal/domain"
)

// authUser is the JSON shape of one entry in the AUTH_USERS environment
// variable. Passwords are configured as bcrypt hashes, never plaintext.
type authUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"password_hash"`
}

// ParseAuthUsers decodes the configured user set from a JSON array.
func ParseAuthUsers(raw string) ([]domain.Credential, error) {
	var users []authUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("parsing AUTH_USERS: %w", err)
	}

	validRoles := []domain.UserRole{domain.UserRoleViewer, domain.UserRoleEditor}

	credentials := make([]domain.Credential, 0, len(users))
	for _, u := range users {
		if u.Email == "" {
			return nil, fmt.Errorf("AUTH_USERS entry missing email")
		}
		if u.PasswordHash == "" {
			return nil, fmt.Errorf("AUTH_USERS entry for %q missing password_hash", u.Email)
		}
		if !slices.Contains(validRoles, domain.UserRole(u.Role)) {
			return nil, fmt.Errorf("AUTH_USERS entry for %q has unrecognised role %q", u.Email, u.Role)
		}

		credentials = append(credentials, domain.Credential{
			User: domain.User{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
				Role:  domain.UserRole(u.Role),
			},
			PasswordHash: u.PasswordHash,
		})
	}

	return credentials, nil
}
