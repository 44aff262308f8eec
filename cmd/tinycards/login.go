package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tinycards/internal/cli"
	"github.com/at-ishikawa/tinycards/internal/config"
)

func newLoginCommand() *cobra.Command {
	var identifier, password string
	command := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session for the following commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, cfg *config.Config) error {
				if identifier == "" {
					identifier = cfg.Credentials.Identifier
				}
				if password == "" {
					password = cfg.Credentials.Password
				}
				return tinycardsCLI.Login(cmd.Context(), identifier, password)
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&identifier, "identifier", "", "email or username. TINYCARDS_IDENTIFIER is used when it is empty")
	flags.StringVar(&password, "password", "", "password. TINYCARDS_PASSWORD is used when it is empty")
	return command
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.Logout()
			})
		},
	}
}
