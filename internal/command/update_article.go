package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

// UpdateArticleRequest is the request for the UpdateArticle command.
type UpdateArticleRequest struct {
	ID    int64
	Patch domain.ArticlePatch
}

// UpdateArticle validates a partial update and applies it through the store.
type UpdateArticle struct {
	Updater datasources.ArticleUpdater
}

// NewUpdateArticle creates a properly initialized UpdateArticle command.
func NewUpdateArticle(updater datasources.ArticleUpdater) *UpdateArticle {
	return &UpdateArticle{Updater: updater}
}

// Execute applies the patch and returns the updated record. Returns
// domain.ErrNotFound unwrapped so callers can map it to a response status.
func (c *UpdateArticle) Execute(ctx context.Context, req UpdateArticleRequest) (domain.Article, error) {
	if err := validateArticlePatch(req.Patch); err != nil {
		return domain.Article{}, err
	}

	article, err := c.Updater.UpdateArticle(ctx, req.ID, req.Patch)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Article{}, err
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("updating article: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "updated article", "article_id", article.ID)

	return article, nil
}
