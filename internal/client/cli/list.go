package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/rollbook/internal/client/syncer"
	"github.com/iudanet/rollbook/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	sectionFlag := fs.String("section", "", "section: company or junior")
	marks := fs.Bool("marks", false, "show the latest mark for each member")
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

	// Событие публикуется только если сервер вернул другие данные
	refreshed := make(chan syncer.ChangeEvent, 1)
	c.sync.Subscribe(func(ev syncer.ChangeEvent) {
		if ev.Section != section {
			return
		}
		select {
		case refreshed <- ev:
		default:
		}
	})

	members, err := c.sync.FetchMembers(ctx, section)
	if err != nil {
		return err
	}

	// Настройки дают человеческое название секции, если оно задано
	title := string(section)
	if settings, sErr := c.sync.Settings(ctx, section); sErr == nil && settings.Title != "" {
		title = settings.Title
	}

	c.printMembers(title, members, *marks)

	// Фоновая ревалидация из FetchMembers не успевает завершиться до
	// выхода процесса, поэтому кэш дотягивается до сервера синхронно.
	// Ошибка здесь означает offline: показанный кэш остается как есть.
	if err := c.sync.Revalidate(ctx, section); err != nil {
		return nil
	}

	select {
	case <-refreshed:
		members, err = c.sync.FetchMembers(ctx, section)
		if err != nil {
			return err
		}
		c.io.Println()
		c.io.Println("Refreshed from server:")
		c.printMembers(title, members, *marks)
	default:
	}
	return nil
}

func (c *Cli) printMembers(title string, members []*models.Member, withMarks bool) {
	if len(members) == 0 {
		c.io.Printf("No members in %s\n", title)
		return
	}

	c.io.Printf("Members of %s (%d):\n", title, len(members))
	for _, member := range members {
		leader := ""
		if member.SquadLeader {
			leader = " [leader]"
		}
		c.io.Printf("  %-38s squad %-2d  %s%s\n", member.ID, member.Squad, member.Name, leader)
		if withMarks && len(member.Marks) > 0 {
			c.io.Printf("    last mark: %s\n", formatMark(member.Marks[0]))
		}
	}
}

func formatMark(mark models.Mark) string {
	if mark.Absent() {
		return mark.Date + " absent"
	}
	s := fmt.Sprintf("%s score %d", mark.Date, mark.Score)
	if mark.Behaviour != nil {
		s += fmt.Sprintf(" behaviour %d", *mark.Behaviour)
	}
	return s
}
