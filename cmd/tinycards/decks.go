package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/tinycards/internal/cli"
	"github.com/at-ishikawa/tinycards/internal/config"
	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

func newDecksCommand() *cobra.Command {
	decksCommand := &cobra.Command{
		Use:   "decks",
		Short: "Manage decks of the logged-in user",
	}

	decksCommand.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List decks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
					return tinycardsCLI.ListDecks(cmd.Context())
				})
			},
		},
		newDecksCreateCommand(),
		&cobra.Command{
			Use:   "import <title> <csv file>",
			Short: "Append cards of a CSV file to a deck",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
					return tinycardsCLI.ImportCards(cmd.Context(), args[0], args[1])
				})
			},
		},
		newDecksExportCommand(),
		&cobra.Command{
			Use:   "delete <title>",
			Short: "Delete a deck",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
					return tinycardsCLI.DeleteDeck(cmd.Context(), args[0])
				})
			},
		},
	)
	return decksCommand
}

func newDecksCreateCommand() *cobra.Command {
	var input cli.CreateDeckInput
	var useJSON bool
	command := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Title = args[0]
			input.Encoding = tinycards.EncodingMultipart
			if useJSON {
				input.Encoding = tinycards.EncodingJSON
			}
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.CreateDeck(cmd.Context(), input)
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&input.Description, "description", "", "description of the deck")
	flags.StringVar(&input.CSVPath, "csv", "", "CSV file with front and back columns")
	flags.StringVar(&input.Cover, "cover", "", "path or URL of the cover image")
	flags.BoolVar(&useJSON, "json", false, "send the deck as JSON. The cover image is not uploaded")
	return command
}

func newDecksExportCommand() *cobra.Command {
	var input cli.ExportDeckInput
	command := &cobra.Command{
		Use:   "export <title>",
		Short: "Export cards of a deck. CSV is written to the standard output without any file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Title = args[0]
			return runTinycardsCLI(func(tinycardsCLI *cli.TinycardsCLI, _ *config.Config) error {
				return tinycardsCLI.ExportDeck(cmd.Context(), input)
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&input.CSVPath, "csv", "", "CSV file to write")
	flags.StringVar(&input.PDFPath, "pdf", "", "PDF file to write")
	return command
}
