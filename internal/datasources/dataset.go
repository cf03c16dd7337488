package datasources

import (
	"context"

	"github.com/jbeshir/article-manager/internal/domain"
)

// ArticleRepository is the full capability set of the article store.
// Consumers should depend on the narrowest interface that covers their use.
type ArticleRepository interface {
	ArticleLister
	ArticleGetter
	ArticleCreator
	ArticleUpdater
	ArticleDeleter
}

type ArticleLister interface {
	ListArticles(
		ctx context.Context,
		filters domain.ArticleFilters,
		options domain.ArticleListOptions,
	) ([]domain.Article, domain.Pagination, error)
}

type ArticleGetter interface {
	GetArticle(ctx context.Context, id int64) (domain.Article, error)
}

type ArticleCreator interface {
	CreateArticle(ctx context.Context, form domain.ArticleForm) (domain.Article, error)
}

type ArticleUpdater interface {
	UpdateArticle(ctx context.Context, id int64, patch domain.ArticlePatch) (domain.Article, error)
}

type ArticleDeleter interface {
	DeleteArticle(ctx context.Context, id int64) error
}

type CredentialByEmailGetter interface {
	GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error)
}

type SessionCreator interface {
	CreateSession(ctx context.Context, session domain.Session) error
}

type SessionByTokenHashGetter interface {
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)
}
