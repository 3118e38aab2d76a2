package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const (
	featuredListingKey   = "showcase:listings:featured"
	listingGenerationKey = "showcase:listings:gen"
)

// listingKeys is every key InvalidateListings clears.
var listingKeys = []string{featuredListingKey}

var _ datasources.ListingCache = (*ListingCache)(nil)

type ListingCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}

	return client, nil
}

func NewListingCache(client *goredis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

// GetFeaturedProducts reads the listing and the generation in one round trip.
func (c *ListingCache) GetFeaturedProducts(
	ctx context.Context,
) ([]domain.Product, datasources.ListingGeneration, bool, error) {
	values, err := c.client.MGet(ctx, listingGenerationKey, featuredListingKey).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("reading featured listing: %w", err)
	}

	gen, err := parseGeneration(values[0])
	if err != nil {
		return nil, 0, false, err
	}

	data, ok := values[1].(string)
	if !ok {
		return nil, gen, false, nil
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, gen, false, fmt.Errorf("decoding featured listing: %w", err)
	}
	return products, gen, true, nil
}

// SetFeaturedProducts writes the listing only if the generation is still gen.
// A concurrent invalidation aborts the transaction and the write is dropped.
func (c *ListingCache) SetFeaturedProducts(
	ctx context.Context,
	gen datasources.ListingGeneration,
	products []domain.Product,
) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding featured listing: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, listingGenerationKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return fmt.Errorf("reading listing generation: %w", err)
		}
		if datasources.ListingGeneration(current) != gen {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, featuredListingKey, data, c.ttl)
			return nil
		})
		return err
	}, listingGenerationKey)
	if errors.Is(err, errStaleGeneration) || errors.Is(err, goredis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("writing featured listing: %w", err)
	}
	return nil
}

// InvalidateListings clears the cached listings and advances the generation atomically.
func (c *ListingCache) InvalidateListings(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, listingGenerationKey)
		pipe.Del(ctx, listingKeys...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidating cached listings: %w", err)
	}
	return nil
}

var errStaleGeneration = errors.New("listing generation changed")

func parseGeneration(v any) (datasources.ListingGeneration, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected listing generation type %T", v)
	}
	gen, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing listing generation: %w", err)
	}
	return datasources.ListingGeneration(gen), nil
}
