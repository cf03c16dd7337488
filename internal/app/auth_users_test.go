package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/article-manager/internal/domain"
)

func TestParseAuthUsers(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    []domain.Credential
		wantErr string
	}{
		{
			name: "two_users",
			raw: `[
				{"id":"u-1","name":"Ada","email":"ada@example.com","role":"editor","password_hash":"$2a$10$hash1"},
				{"id":"u-2","name":"Ben","email":"ben@example.com","role":"viewer","password_hash":"$2a$10$hash2"}
			]`,
			want: []domain.Credential{
				{
					User: domain.User{
						ID: "u-1", Name: "Ada", Email: "ada@example.com", Role: domain.UserRoleEditor,
					},
					PasswordHash: "$2a$10$hash1",
				},
				{
					User: domain.User{
						ID: "u-2", Name: "Ben", Email: "ben@example.com", Role: domain.UserRoleViewer,
					},
					PasswordHash: "$2a$10$hash2",
				},
			},
		},
		{
			name: "empty_array",
			raw:  `[]`,
			want: []domain.Credential{},
		},
		{
			name:    "not_json",
			raw:     `nope`,
			wantErr: "parsing AUTH_USERS",
		},
		{
			name:    "missing_email",
			raw:     `[{"id":"u-1","role":"editor","password_hash":"$2a$10$hash1"}]`,
			wantErr: "missing email",
		},
		{
			name:    "missing_password_hash",
			raw:     `[{"id":"u-1","email":"ada@example.com","role":"editor"}]`,
			wantErr: "missing password_hash",
		},
		{
			name:    "unrecognised_role",
			raw:     `[{"id":"u-1","email":"ada@example.com","role":"admin","password_hash":"$2a$10$hash1"}]`,
			wantErr: "unrecognised role",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			credentials, err := ParseAuthUsers(tc.raw)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, credentials)
		})
	}
}
