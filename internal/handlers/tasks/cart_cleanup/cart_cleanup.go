package cart_cleanup

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type Service interface {
	CleanupStaleItems(ctx context.Context, maxAge time.Duration) (int64, error)
}

type CartCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewCartCleanup(log logger.Logger, service Service, interval, maxAge time.Duration) *CartCleanup {
	return &CartCleanup{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (c *CartCleanup) TTL() time.Duration {
	return c.interval
}

func (c *CartCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	rowsAffected, err := c.service.CleanupStaleItems(ctxWithTimeout, c.maxAge)

	if rowsAffected > 0 {
		c.log.With(
			logger.NewField("stale_cart_items", rowsAffected),
		).Info("cart cleanup")
	}

	return err
}

func (c *CartCleanup) Info() string {
	return "cart cleanup"
}
