package api

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"eventdesk/internal/logger"
)

// WaitReady probes the API with exponential backoff until it answers a GET
// on the categories collection or the deadline expires. Resource operations
// are never retried; this probe only gates startup when the caller asks to
// wait for the server.
func (c *Client) WaitReady(ctx context.Context, maxWait time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxElapsedTime = maxWait

	attempt := 0
	probe := func() error {
		attempt++
		var categories []probeRecord
		if err := c.get(ctx, "categories", &categories); err != nil {
			logger.Debug("api not ready", logger.Fields{"attempt": attempt})
			return err
		}
		return nil
	}

	if err := backoff.Retry(probe, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("waiting for api: %w", err)
	}
	return nil
}

// probeRecord decodes just enough of a category to confirm the endpoint
// serves JSON.
type probeRecord struct {
	ID int64 `json:"id"`
}
