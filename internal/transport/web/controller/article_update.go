package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/domain"
)

type ArticleUpdate struct {
	UpdateCmd command.Command[command.UpdateArticleRequest, domain.Article]
}

func (c ArticleUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDFromPath(mux.Vars(r))
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse article ID", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", id))

	var patch domain.ArticlePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.ErrorContext(ctx, "unable to decode article patch", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	article, err := c.UpdateCmd.Execute(ctx, command.UpdateArticleRequest{ID: id, Patch: patch})
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if command.IsValidationError(err) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprintf(w, `{"message":%q}`, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to update article", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(article); err != nil {
		logger.ErrorContext(ctx, "unable to write article to response", "error", err)
	}
}
