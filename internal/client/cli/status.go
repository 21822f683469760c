package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/rollbook/internal/client/auth"
	"github.com/iudanet/rollbook/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session ===")

	session, err := c.authService.Restore(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Not authenticated. Run 'rollbook login'.")
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Session expired. Run 'rollbook login'.")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		c.session = session
		c.io.Printf("User: %s (%s)\n", session.UserID, session.Role)
		if !session.ExpiresAt.IsZero() {
			c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
		}
	}

	c.io.Println()
	c.io.Println("=== Sync ===")

	pending, err := c.sync.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending writes: %w", err)
	}
	if pending > 0 {
		c.io.Printf("Pending: %d write(s) waiting for replay\n", pending)
		c.io.Println("Run 'rollbook sync' when the server is reachable.")
	} else {
		c.io.Println("All changes delivered")
	}
	return nil
}
