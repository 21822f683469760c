package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/client/syncer"
	"github.com/iudanet/rollbook/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "member name")
	squad := fs.Int("squad", 0, "squad number")
	year := fs.String("year", "", "join year")
	leader := fs.Bool("leader", false, "squad leader")
	sectionFlag := fs.String("section", "", "section: company or junior")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.requireSession(ctx); err != nil {
		return err
	}
	section, err := c.resolveSection(*sectionFlag)
	if err != nil {
		return err
	}

	member := &models.Member{
		Name:        *name,
		Squad:       *squad,
		Year:        *year,
		Section:     section,
		SquadLeader: *leader,
	}
	if err := c.sync.CreateMember(ctx, member); err != nil {
		return describeSyncError(err)
	}

	c.io.Printf("Added %s (%s)\n", member.Name, member.ID)
	return nil
}

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	id := fs.String("id", "", "member id")
	name := fs.String("name", "", "new name")
	squad := fs.Int("squad", -1, "new squad number")
	year := fs.String("year", "", "new join year")
	leader := fs.Bool("leader", false, "squad leader")
	leaderSet := false
	sectionFlag := fs.String("section", "", "section: company or junior")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "leader" {
			leaderSet = true
		}
	})

	if *id == "" {
		return errors.New("flag -id is required")
	}
	if err := c.requireSession(ctx); err != nil {
		return err
	}
	section, err := c.resolveSection(*sectionFlag)
	if err != nil {
		return err
	}

	member, err := c.findMember(ctx, *id, section)
	if err != nil {
		return err
	}

	// Правка строится поверх закэшированного состояния
	if *name != "" {
		member.Name = *name
	}
	if *squad >= 0 {
		member.Squad = *squad
	}
	if *year != "" {
		member.Year = *year
	}
	if leaderSet {
		member.SquadLeader = *leader
	}

	opts := syncer.UpdateOptions{Actor: c.session.UserID, Audit: true}
	if err := c.sync.UpdateMember(ctx, member, opts); err != nil {
		return describeSyncError(err)
	}

	c.io.Printf("Updated %s\n", member.Name)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "member id")
	sectionFlag := fs.String("section", "", "section: company or junior")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return errors.New("flag -id is required")
	}
	if err := c.requireSession(ctx); err != nil {
		return err
	}
	section, err := c.resolveSection(*sectionFlag)
	if err != nil {
		return err
	}

	if err := c.sync.DeleteMember(ctx, *id, section); err != nil {
		return describeSyncError(err)
	}
	c.io.Printf("Deleted %s\n", *id)
	return nil
}

// describeSyncError переводит ошибки синхронизации на язык пользователя
func describeSyncError(err error) error {
	var statusErr *gateway.StatusError
	switch {
	case errors.Is(err, gateway.ErrUnavailable):
		return fmt.Errorf("server unreachable, change not applied: %w", err)
	case errors.As(err, &statusErr):
		return fmt.Errorf("server rejected the change: %s", statusErr.Message)
	default:
		return err
	}
}
