package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tinycards/internal/cli"
	"github.com/at-ishikawa/tinycards/internal/config"
	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

func newUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user [user id]",
		Short: "Show a user. The logged-in user is shown without a user id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userID int64
			if len(args) > 0 {
				var err error
				if userID, err = parseUserID(args[0]); err != nil {
					return err
				}
			}
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.ShowUser(cmd.Context(), userID)
			})
		},
	}
}

func newSubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <user id>",
		Short: "Subscribe to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.Subscribe(cmd.Context(), userID)
			})
		},
	}
}

func newUnsubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe <user id>",
		Short: "Unsubscribe from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.Unsubscribe(cmd.Context(), userID)
			})
		},
	}
}

func newTrendsCommand() *cobra.Command {
	var types TrendableTypesFlag
	var query tinycards.TrendsQuery
	command := &cobra.Command{
		Use:   "trends",
		Short: "Show trending decks, deck groups and users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Types = types
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.ShowTrends(cmd.Context(), query)
			})
		},
	}
	flags := command.Flags()
	flags.Var(&types, "types", "comma separated types of DECK, DECK_GROUP and USER. DECK,DECK_GROUP by default")
	flags.IntVar(&query.Limit, "limit", 10, "number of trends")
	flags.IntVar(&query.Page, "page", 0, "page of trends")
	flags.StringVar(&query.FromLanguage, "from-language", "en", "language of trends")
	return command
}

func newSearchCommand() *cobra.Command {
	var types TrendableTypesFlag
	query := tinycards.NewSearchQuery("")
	command := &cobra.Command{
		Use:   "search <query>",
		Short: "Search decks, deck groups and users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Query = args[0]
			query.Types = types
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.Search(cmd.Context(), query)
			})
		},
	}
	flags := command.Flags()
	flags.Var(&types, "types", "comma separated types of DECK, DECK_GROUP and USER. DECK,DECK_GROUP by default")
	flags.IntVar(&query.Limit, "limit", query.Limit, "number of results")
	flags.IntVar(&query.Page, "page", 0, "page of results")
	flags.BoolVar(&query.FuzzySearch, "fuzzy", query.FuzzySearch, "use fuzzy search")
	return command
}
