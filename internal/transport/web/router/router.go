package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
	"github.com/jbeshir/article-manager/internal/transport/web/controller"
)

func MakeRouter(
	articles datasources.ArticleRepository,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	listCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	authenticateCmd command.Command[command.AuthenticateUserRequest, command.AuthenticateUserResponse],
	createCmd command.Command[command.CreateArticleRequest, domain.Article],
	updateCmd command.Command[command.UpdateArticleRequest, domain.Article],
	deleteCmd command.Command[command.DeleteArticleRequest, command.Empty],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/auth/login", controller.AuthLogin{
		AuthenticateCmd: authenticateCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/articles", controller.ArticlesList{
		Lister:      articles,
		CacheMaxAge: listCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", requireEditorMiddleware(controller.ArticleCreate{
		CreateCmd: createCmd,
	})).Methods(http.MethodPost)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		Getter:      articles,
		CacheMaxAge: listCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}", requireEditorMiddleware(controller.ArticleUpdate{
		UpdateCmd: updateCmd,
	})).Methods(http.MethodPut)

	r.Handle("/v1/articles/{article_id}", requireEditorMiddleware(controller.ArticleDelete{
		DeleteCmd: deleteCmd,
	})).Methods(http.MethodDelete)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Lister:          articles,
		CacheMaxAge:     listCacheMaxAge,
	})

	return r, nil
}
