package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

// DeleteArticleRequest is the request for the DeleteArticle command.
type DeleteArticleRequest struct {
	ID int64
}

// DeleteArticle removes an article through the store. Deletion is total;
// there is no tombstone and the ID is never reused.
type DeleteArticle struct {
	Deleter datasources.ArticleDeleter
}

// NewDeleteArticle creates a properly initialized DeleteArticle command.
func NewDeleteArticle(deleter datasources.ArticleDeleter) *DeleteArticle {
	return &DeleteArticle{Deleter: deleter}
}

// Execute deletes the article. Returns domain.ErrNotFound unwrapped so
// callers can map it to a response status.
func (c *DeleteArticle) Execute(ctx context.Context, req DeleteArticleRequest) (Empty, error) {
	err := c.Deleter.DeleteArticle(ctx, req.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return Empty{}, err
	}
	if err != nil {
		return Empty{}, fmt.Errorf("deleting article: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "deleted article", "article_id", req.ID)

	return Empty{}, nil
}
