package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/rollbook/internal/models"
)

func (c *Cli) runInvites(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}
	if c.session.Role != models.RoleAdmin {
		return fmt.Errorf("invite codes are visible to admins only")
	}

	invites, err := c.sync.Invites(ctx)
	if err != nil {
		return describeSyncError(err)
	}

	if len(invites) == 0 {
		c.io.Println("No invite codes")
		return nil
	}

	c.io.Printf("Invite codes (%d):\n", len(invites))
	for _, invite := range invites {
		state := "unused"
		if invite.Used {
			state = "used"
		}
		c.io.Printf("  %-12s %-8s %s\n", invite.Code, invite.Role, state)
	}
	return nil
}
