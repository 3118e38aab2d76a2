package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/datasources/memory"
	"github.com/jbeshir/product-showcase/internal/datasources/mysql"
	"github.com/jbeshir/product-showcase/internal/datasources/redis"
	"github.com/jbeshir/product-showcase/internal/transport/web/router"
	"github.com/jbeshir/product-showcase/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	products, err := setupProductRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up product repository: %w", err)
	}

	listingCache, err := setupListingCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up listing cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	commands := router.Commands{
		ApplyVote:     command.NewApplyVote(products, listingCache, products),
		SubmitProduct: command.NewSubmitProduct(products),
		ListFeatured:  command.NewListFeaturedProducts(listingCache, products),
		ListRecent:    command.NewListRecentProducts(products),
	}

	httpRouter, err := router.MakeRouter(
		products,
		commands,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "LISTING_CACHE_MAX_AGE"),
		authMiddleware,
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

func setupProductRepository(ctx context.Context) (datasources.ProductRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORE_DRIVER"); driver {
	case "memory":
		return memory.New(), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrating MySQL schema: %w", err)
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver [%s]", driver)
	}
}

func setupListingCache(ctx context.Context) (datasources.ListingCache, error) {
	switch driver := MustGetEnvAsString(ctx, "LISTING_CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullListingCache{}, nil
	case "memory":
		return memory.NewListingCache(), nil
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_ADDR"))
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return redis.NewListingCache(client, MustGetEnvAsDuration(ctx, "LISTING_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown listing cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
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
