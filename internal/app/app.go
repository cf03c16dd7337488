package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/datasources/articlestore"
	"github.com/jbeshir/article-manager/internal/datasources/blob"
	"github.com/jbeshir/article-manager/internal/datasources/credentialstore"
	"github.com/jbeshir/article-manager/internal/datasources/sessionstore"
	"github.com/jbeshir/article-manager/internal/transport/web/router"
	"github.com/jbeshir/article-manager/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	storage, err := setupBlobStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up blob storage: %w", err)
	}

	store, err := articlestore.Load(ctx, storage, articlestore.Config{
		SeedCount:        GetEnvAsIntOrDefault(ctx, "SEED_COUNT", articlestore.DefaultConfig().SeedCount),
		SimulatedLatency: GetEnvAsDurationOrDefault(ctx, "SIMULATED_LATENCY", 0),
	})
	if err != nil {
		return nil, fmt.Errorf("loading article store: %w", err)
	}

	sessions := sessionstore.New()

	credentials, err := setupCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up credentials: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, sessions)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	authenticateCmd := command.NewAuthenticateUser(credentials, sessions)
	createCmd := command.NewCreateArticle(store)
	updateCmd := command.NewUpdateArticle(store)
	deleteCmd := command.NewDeleteArticle(store)

	httpRouter, err := router.MakeRouter(
		store,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		GetEnvAsDurationOrDefault(ctx, "LIST_CACHE_MAX_AGE", time.Minute),
		authMiddleware,
		authenticateCmd,
		createCmd,
		updateCmd,
		deleteCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupBlobStorage(ctx context.Context) (blob.Storage, error) {
	switch driver := MustGetEnvAsString(ctx, "STORAGE_DRIVER"); driver {
	case "memory":
		return blob.NewMemory(), nil
	case "badger":
		return blob.OpenBadger(MustGetEnvAsString(ctx, "BADGER_PATH"), blob.DefaultSlot)
	case "mysql":
		return blob.ConnectMySQL(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"), blob.DefaultSlot)
	default:
		return nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, sessions *sessionstore.Store,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "session":
			validators = append(validators, router.NewSessionValidator(sessions))
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

func setupCredentials(ctx context.Context) (credentialstore.Static, error) {
	users, err := ParseAuthUsers(MustGetEnvAsString(ctx, "AUTH_USERS"))
	if err != nil {
		return credentialstore.Static{}, err
	}
	return credentialstore.NewStatic(users), nil
}
