// Package credentialstore serves the fixed user set the dashboard
// authenticates against, configured at startup.
package credentialstore

import (
	"context"
	"strings"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

var _ datasources.CredentialByEmailGetter = Static{}

type Static struct {
	byEmail map[string]domain.Credential
}

func NewStatic(credentials []domain.Credential) Static {
	byEmail := make(map[string]domain.Credential, len(credentials))
	for _, c := range credentials {
		byEmail[strings.ToLower(c.User.Email)] = c
	}
	return Static{byEmail: byEmail}
}

func (s Static) GetCredentialByEmail(_ context.Context, email string) (domain.Credential, error) {
	credential, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.Credential{}, domain.ErrNotFound
	}
	return credential, nil
}
