package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/jbeshir/product-showcase/internal/transport/web/controller"
)

// Commands are the command handlers the HTTP API exposes.
type Commands struct {
	ApplyVote     command.Command[command.ApplyVoteRequest, domain.VoteResult]
	SubmitProduct command.Command[command.SubmitProductRequest, domain.FormState]
	ListFeatured  command.Command[command.Empty, []domain.Product]
	ListRecent    command.Command[command.Empty, []domain.Product]
}

func MakeRouter(
	products datasources.ProductRepository,
	commands Commands,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	listingCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/products", controller.ProductsList{
		Lister:      products,
		CacheMaxAge: listingCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products", requireJSONMiddleware(controller.ProductSubmit{
		Command: commands.SubmitProduct,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/products/featured", controller.ProductsCommandList{
		Command:     commands.ListFeatured,
		CacheMaxAge: listingCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/recent", controller.ProductsCommandList{
		Command:     commands.ListRecent,
		CacheMaxAge: listingCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{slug}", controller.ProductGet{
		Fetcher:     products,
		CacheMaxAge: listingCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{product_id}/upvote", controller.ProductVote{
		Command:   commands.ApplyVote,
		Direction: domain.VoteUp,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/products/{product_id}/downvote", controller.ProductVote{
		Command:   commands.ApplyVote,
		Direction: domain.VoteDown,
	}).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Command:         commands.ListRecent,
			CacheMaxAge:     listingCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
