package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Command         command.Command[command.Empty, []domain.Product]
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Recently Launched Products",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Products launched on the showcase in the last week",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	products, err := c.Command.Execute(r.Context(), command.Empty{})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch products for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, p := range products {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s/v1/products/%s", c.FeedHostname, p.Slug),
			IsPermaLink: "false",
			Title:       p.Name,
			Link:        &feeds.Link{Href: p.WebsiteURL},
			Description: p.Tagline,
			Content:     p.Description,
			Author:      &feeds.Author{Name: p.SubmittedBy},
			Created:     p.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
