package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/domain"
)

type AuthLogin struct {
	AuthenticateCmd command.Command[command.AuthenticateUserRequest, command.AuthenticateUserResponse]
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthLoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	var req AuthLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(r.Context(), "unable to decode login request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := c.AuthenticateCmd.Execute(r.Context(), command.AuthenticateUserRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, domain.ErrInvalidCredentials) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid email or password"}`))
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "login failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AuthLoginResponse{
		Token: res.Token,
		User:  res.User,
	}); err != nil {
		logger.ErrorContext(r.Context(), "unable to write login response", "error", err)
	}
}
