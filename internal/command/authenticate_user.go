package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

// SessionTokenPrefix is the prefix for session tokens in the Authorization
// header.
const SessionTokenPrefix = "session|"

// AuthenticateUserRequest is the request for the AuthenticateUser command.
type AuthenticateUserRequest struct {
	Email    string
	Password string
}

// AuthenticateUserResponse is the response from the AuthenticateUser command.
type AuthenticateUserResponse struct {
	Token string
	User  domain.User
}

// AuthenticateUser checks credentials against the configured user set and
// issues a bearer session token on success.
type AuthenticateUser struct {
	Credentials datasources.CredentialByEmailGetter
	Sessions    datasources.SessionCreator
}

// NewAuthenticateUser creates a properly initialized AuthenticateUser command.
func NewAuthenticateUser(
	credentials datasources.CredentialByEmailGetter,
	sessions datasources.SessionCreator,
) *AuthenticateUser {
	return &AuthenticateUser{
		Credentials: credentials,
		Sessions:    sessions,
	}
}

// Execute verifies the email/password pair and creates a session. Failures
// surface as domain.ErrInvalidCredentials without distinguishing an unknown
// email from a wrong password.
func (c *AuthenticateUser) Execute(
	ctx context.Context, req AuthenticateUserRequest,
) (AuthenticateUserResponse, error) {
	credential, err := c.Credentials.GetCredentialByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return AuthenticateUserResponse{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserResponse{}, fmt.Errorf("looking up credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(credential.PasswordHash), []byte(req.Password),
	); err != nil {
		return AuthenticateUserResponse{}, domain.ErrInvalidCredentials
	}

	// Generate cryptographically secure random token (32 bytes = 64 hex chars)
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return AuthenticateUserResponse{}, fmt.Errorf("generating random token: %w", err)
	}

	fullToken := SessionTokenPrefix + hex.EncodeToString(tokenBytes)

	// Only the SHA256 hash is stored server-side.
	hash := sha256.Sum256([]byte(fullToken))
	tokenHash := hex.EncodeToString(hash[:])

	session := domain.Session{
		ID:        uuid.New().String(),
		TokenHash: tokenHash,
		User:      credential.User,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.Sessions.CreateSession(ctx, session); err != nil {
		return AuthenticateUserResponse{}, fmt.Errorf("creating session: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "user logged in", "user_id", credential.User.ID, "session_id", session.ID)

	return AuthenticateUserResponse{
		Token: fullToken,
		User:  credential.User,
	}, nil
}
