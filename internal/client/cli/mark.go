package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/iudanet/rollbook/internal/client/syncer"
	"github.com/iudanet/rollbook/internal/models"
)

func (c *Cli) runMark(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mark", flag.ContinueOnError)
	id := fs.String("id", "", "member id")
	date := fs.String("date", "", "mark date, YYYY-MM-DD")
	score := fs.Int("score", 0, "score 0..10")
	behaviour := fs.Int("behaviour", 0, "behaviour score (company section only)")
	absent := fs.Bool("absent", false, "mark the member absent")
	sectionFlag := fs.String("section", "", "section: company or junior")
	if err := fs.Parse(args); err != nil {
		return err
	}

	behaviourSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "behaviour" {
			behaviourSet = true
		}
	})

	if *id == "" {
		return errors.New("flag -id is required")
	}
	if *date == "" {
		return errors.New("flag -date is required")
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

	mark := models.Mark{Date: *date, Score: *score}
	if *absent {
		mark.Score = models.ScoreAbsent
	}
	if behaviourSet {
		b := *behaviour
		mark.Behaviour = &b
	}

	setMark(member, mark)

	opts := syncer.UpdateOptions{Actor: c.session.UserID, Audit: true}
	if err := c.sync.UpdateMember(ctx, member, opts); err != nil {
		return describeSyncError(err)
	}

	c.io.Printf("Marked %s: %s\n", member.Name, formatMark(mark))
	return nil
}

// setMark заменяет отметку участника на дату mark.Date
func setMark(member *models.Member, mark models.Mark) {
	for i := range member.Marks {
		if member.Marks[i].Date == mark.Date {
			member.Marks[i] = mark
			return
		}
	}
	member.Marks = append(member.Marks, mark)
}
