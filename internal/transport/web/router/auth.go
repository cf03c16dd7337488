package router

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	User   domain.User
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUser(r.Context(), result.User)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewSessionValidator creates a validator for session tokens issued by the
// login endpoint. Tokens are looked up by their SHA256 hash.
func NewSessionValidator(sessions datasources.SessionByTokenHashGetter) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer "+command.SessionTokenPrefix) {
			return nil, nil
		}

		fullToken := authHeader[len("Bearer "):]
		hash := sha256.Sum256([]byte(fullToken))
		tokenHash := hex.EncodeToString(hash[:])

		session, err := sessions.GetSessionByTokenHash(r.Context(), tokenHash)
		if err != nil {
			return nil, fmt.Errorf("invalid session token")
		}

		return &AuthResult{
			User:   session.User,
			Method: domain.AuthMethodSession,
		}, nil
	}
}

// auth0Claims carries the custom claims an external identity provider sets
// for dashboard users.
type auth0Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *auth0Claims) Validate(_ context.Context) error {
	return nil
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens. Users without
// a recognised role claim are treated as viewers.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &auth0Claims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer auth0|") {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len("Bearer auth0|"):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)

		role := domain.UserRoleViewer
		if custom, ok := claims.CustomClaims.(*auth0Claims); ok {
			if custom.Role == string(domain.UserRoleEditor) {
				role = domain.UserRoleEditor
			}

			return &AuthResult{
				User: domain.User{
					ID:    claims.RegisteredClaims.Subject,
					Name:  custom.Name,
					Email: custom.Email,
					Role:  role,
				},
				Method: domain.AuthMethodAuth0,
			}, nil
		}

		return &AuthResult{
			User: domain.User{
				ID:   claims.RegisteredClaims.Subject,
				Role: role,
			},
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}
