package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

// CreateArticleRequest is the request for the CreateArticle command.
type CreateArticleRequest struct {
	Form domain.ArticleForm
}

// CreateArticle validates a new article form and writes it through the store.
type CreateArticle struct {
	Creator datasources.ArticleCreator
}

// NewCreateArticle creates a properly initialized CreateArticle command.
func NewCreateArticle(creator datasources.ArticleCreator) *CreateArticle {
	return &CreateArticle{Creator: creator}
}

// Execute creates the article, returning the stored record with its assigned
// ID and timestamps.
func (c *CreateArticle) Execute(ctx context.Context, req CreateArticleRequest) (domain.Article, error) {
	if err := validateArticleForm(req.Form); err != nil {
		return domain.Article{}, err
	}

	article, err := c.Creator.CreateArticle(ctx, req.Form)
	if err != nil {
		return domain.Article{}, fmt.Errorf("creating article: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "created article", "article_id", article.ID)

	return article, nil
}
