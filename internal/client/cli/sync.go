package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/rollbook/internal/client/syncer"
)

func (c *Cli) runSync(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	pending, err := c.sync.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending writes: %w", err)
	}

	if pending > 0 {
		c.io.Printf("Replaying %d pending write(s)...\n", pending)
	}

	if err := c.sync.Replay(ctx); err != nil {
		var replayErr *syncer.ReplayError
		if errors.As(err, &replayErr) {
			remaining, countErr := c.sync.PendingCount(ctx)
			if countErr == nil {
				c.io.Printf("Replay stopped at %s: %v\n", replayErr.Op, replayErr.Err)
				c.io.Printf("%d write(s) kept for the next attempt\n", remaining)
			}
		}
		return describeSyncError(err)
	}

	c.io.Println("Sync complete")
	return nil
}
