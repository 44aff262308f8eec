package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/at-ishikawa/tinycards/internal/session"
	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

// TinycardsCLI runs the commands of the tinycards CLI against the API.
type TinycardsCLI struct {
	api          tinycards.API
	sessions     *session.Store
	templatePath string
	stdoutWriter io.Writer
	bold         *color.Color
	success      *color.Color
	failure      *color.Color
}

type Option func(*TinycardsCLI)

// WithOutput replaces standard output.
func WithOutput(w io.Writer) Option {
	return func(cli *TinycardsCLI) {
		cli.stdoutWriter = w
	}
}

// WithDeckTemplate sets the markdown template of exported decks.
func WithDeckTemplate(path string) Option {
	return func(cli *TinycardsCLI) {
		cli.templatePath = path
	}
}

func NewTinycardsCLI(api tinycards.API, sessions *session.Store, opts ...Option) *TinycardsCLI {
	cli := &TinycardsCLI{
		api:          api,
		sessions:     sessions,
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		success:      color.New(color.FgGreen),
		failure:      color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// RestoreSession restores the saved session of the API client, if any.
func (cli *TinycardsCLI) RestoreSession() error {
	saved, err := cli.sessions.Load()
	if errors.Is(err, session.ErrNoSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sessions.Load > %w", err)
	}
	cli.api.RestoreSession(saved)
	return nil
}

func (cli *TinycardsCLI) printSuccess(format string, args ...any) error {
	if _, err := cli.success.Fprintf(cli.stdoutWriter, format+"\n", args...); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}

func (cli *TinycardsCLI) printFailure(format string, args ...any) error {
	if _, err := cli.failure.Fprintf(cli.stdoutWriter, format+"\n", args...); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}
