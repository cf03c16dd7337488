package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/datasources/credentialstore"
	"github.com/jbeshir/article-manager/internal/datasources/sessionstore"
	"github.com/jbeshir/article-manager/internal/domain"
)

func TestAuthLogin_ServeHTTP(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	editor := domain.User{
		ID:    "u-1",
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  domain.UserRoleEditor,
	}
	credentials := credentialstore.NewStatic([]domain.Credential{
		{User: editor, PasswordHash: string(passwordHash)},
	})

	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "successful_login",
			body:       `{"email":"ada@example.com","password":"hunter2"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong_password",
			body:       `{"email":"ada@example.com","password":"hunter3"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown_email",
			body:       `{"email":"nobody@example.com","password":"hunter2"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := AuthLogin{
				AuthenticateCmd: command.NewAuthenticateUser(credentials, sessionstore.New()),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			switch tc.wantStatus {
			case http.StatusOK:
				var res AuthLoginResponse
				err := json.NewDecoder(rec.Body).Decode(&res)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(res.Token, command.SessionTokenPrefix))
				assert.Equal(t, editor, res.User)
			case http.StatusUnauthorized:
				var body map[string]string
				err := json.NewDecoder(rec.Body).Decode(&body)
				require.NoError(t, err)
				assert.Equal(t, "invalid email or password", body["message"])
			}
		})
	}
}
