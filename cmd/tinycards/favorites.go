package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tinycards/internal/cli"
	"github.com/at-ishikawa/tinycards/internal/config"
)

func newFavoritesCommand() *cobra.Command {
	favoritesCommand := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite decks",
	}
	favoritesCommand.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorites of the logged-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
					return tinycardsCLI.ListFavorites(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "add <deck title>",
			Short: "Add a deck to favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
					return tinycardsCLI.AddFavorite(cmd.Context(), args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "remove <favorite id>",
			Short: "Remove a favorite",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
					return tinycardsCLI.RemoveFavorite(cmd.Context(), args[0])
				})
			},
		},
	)
	return favoritesCommand
}
