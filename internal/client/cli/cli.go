package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/rollbook/internal/client/auth"
	"github.com/iudanet/rollbook/internal/client/iocli"
	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/client/syncer"
	"github.com/iudanet/rollbook/internal/models"
)

// Cli объединяет команды клиента
type Cli struct {
	authService *auth.Service
	sync        syncer.Service
	io          iocli.IO

	defaultSection models.Section

	// session поднимается один раз на запуск команды
	session *storage.Session
}

// New создает новый CLI
func New(authService *auth.Service, sync syncer.Service, io iocli.IO, defaultSection models.Section) *Cli {
	return &Cli{
		authService:    authService,
		sync:           sync,
		io:             io,
		defaultSection: defaultSection,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "mark":
		return c.runMark(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "invites":
		return c.runInvites(ctx)
	case "sync":
		return c.runSync(ctx)
	case "help", "":
		c.printUsage()
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) printUsage() {
	c.io.Println("Usage: rollbook <command> [flags]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login    Authenticate and cache the session")
	c.io.Println("  logout   Drop the cached session")
	c.io.Println("  status   Show session and pending sync state")
	c.io.Println("  list     List members of a section")
	c.io.Println("  add      Add a member")
	c.io.Println("  update   Update a member")
	c.io.Println("  mark     Set a member's mark for a date")
	c.io.Println("  delete   Delete a member")
	c.io.Println("  invites  List invite codes (admin)")
	c.io.Println("  sync     Replay pending writes and refresh the cache")
}

// requireSession поднимает сохраненную сессию; команды с данными
// требуют хотя бы однажды выполненного login
func (c *Cli) requireSession(ctx context.Context) error {
	if c.session != nil {
		return nil
	}
	session, err := c.authService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated, run 'rollbook login' first: %w", err)
	}
	c.session = session
	return nil
}

// resolveSection выбирает секцию из флага или конфигурации
func (c *Cli) resolveSection(flagValue string) (models.Section, error) {
	section := c.defaultSection
	if flagValue != "" {
		section = models.Section(flagValue)
	}
	if !section.Valid() {
		return "", fmt.Errorf("unknown section %q, use company or junior", section)
	}
	return section, nil
}

// findMember ищет участника по id в кэше секции
func (c *Cli) findMember(ctx context.Context, id string, section models.Section) (*models.Member, error) {
	members, err := c.sync.FetchMembers(ctx, section)
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		if member.ID == id {
			return member, nil
		}
	}
	return nil, fmt.Errorf("member %s not found in section %s", id, section)
}
