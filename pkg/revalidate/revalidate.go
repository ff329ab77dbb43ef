// Package revalidate signals the frontend cache that rendered pages have
// gone stale. Cached renders live in Redis under a per-path key; mutations
// delete the keys and publish the paths so long-running renderers can drop
// in-process copies too.
package revalidate

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/configs"
)

// Paths invalidated by the moderation and submission actions. Fixed per
// action rather than computed from the data touched.
const (
	PathBeers         = "/beers"
	PathBreweries     = "/breweries"
	PathStyles        = "/styles"
	PathAdminQueue    = "/admin/moderation"
	PathAdminContacts = "/admin/contacts"
	PathDashboard     = "/admin/dashboard"
)

const (
	keyPrefix = "page:"
	channel   = "hoplog:revalidate"
)

// Signaler is the cache-revalidation collaborator the servers depend on.
type Signaler interface {
	Revalidate(ctx context.Context, paths ...string) error
}

type Client struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewClient(conf *configs.Config, logger *zap.Logger) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Address,
		Password: conf.Redis.Password,
		DB:       conf.Redis.Database,
	})

	return &Client{rdb: rdb, logger: logger}
}

// Revalidate drops the cached render of each path and announces it on the
// revalidation channel. Failures are collected per path so one bad key does
// not keep the remaining paths stale.
func (c *Client) Revalidate(ctx context.Context, paths ...string) error {
	var errs error

	for _, path := range paths {
		multierr.AppendInto(&errs, c.rdb.Del(ctx, keyPrefix+path).Err())
		multierr.AppendInto(&errs, c.rdb.Publish(ctx, channel, path).Err())
	}

	if errs != nil {
		c.logger.Error("revalidation incomplete", zap.Strings("paths", paths), zap.Error(errs))
	}

	return errs
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
