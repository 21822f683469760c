package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	invite := fs.String("invite", "", "invite code for first-time login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.authService.Login(ctx, username, password, *invite)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	c.session = session

	c.io.Printf("Logged in as %s (%s)\n", username, session.Role)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.session = nil
	c.io.Println("Logged out")
	return nil
}
