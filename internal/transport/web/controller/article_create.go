package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/domain"
)

type ArticleCreate struct {
	CreateCmd command.Command[command.CreateArticleRequest, domain.Article]
}

func (c ArticleCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())

	var form domain.ArticleForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.ErrorContext(r.Context(), "unable to decode article form", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	article, err := c.CreateCmd.Execute(r.Context(), command.CreateArticleRequest{Form: form})
	if command.IsValidationError(err) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprintf(w, `{"message":%q}`, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to create article", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(article); err != nil {
		logger.ErrorContext(r.Context(), "unable to write article to response", "error", err)
	}
}
