package cli

import (
	"context"
	"fmt"
	"log/slog"
)

// Login logs in and saves the session for the following commands.
func (cli *TinycardsCLI) Login(ctx context.Context, identifier, password string) error {
	userID, err := cli.api.Login(ctx, identifier, password)
	if err != nil {
		return fmt.Errorf("api.Login > %w", err)
	}
	current, err := cli.api.Session()
	if err != nil {
		return fmt.Errorf("api.Session > %w", err)
	}
	if err := cli.sessions.Save(current); err != nil {
		return fmt.Errorf("sessions.Save > %w", err)
	}
	slog.Debug("saved a session", "path", cli.sessions.Path(), "userID", userID)

	return cli.printSuccess("Logged in as the user %d", userID)
}

func (cli *TinycardsCLI) Logout() error {
	if err := cli.sessions.Clear(); err != nil {
		return fmt.Errorf("sessions.Clear > %w", err)
	}
	return cli.printSuccess("Logged out")
}
