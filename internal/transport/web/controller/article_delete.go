package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/domain"
)

type ArticleDelete struct {
	DeleteCmd command.Command[command.DeleteArticleRequest, command.Empty]
}

func (c ArticleDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDFromPath(mux.Vars(r))
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse article ID", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.DeleteCmd.Execute(r.Context(), command.DeleteArticleRequest{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "failed to delete article", "error", err, "article_id", id)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
