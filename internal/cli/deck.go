package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/at-ishikawa/tinycards/internal/export"
	"github.com/at-ishikawa/tinycards/internal/model"
	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

type CreateDeckInput struct {
	Title       string
	Description string
	// CSVPath is a CSV file with front and back columns of the cards
	CSVPath string
	// Cover is a local path or a URL of the cover image
	Cover    string
	Encoding tinycards.Encoding
}

type ExportDeckInput struct {
	Title   string
	CSVPath string
	PDFPath string
}

func (cli *TinycardsCLI) ListDecks(ctx context.Context) error {
	decks, err := cli.api.GetDecks(ctx)
	if err != nil {
		return fmt.Errorf("api.GetDecks > %w", err)
	}
	if len(decks) == 0 {
		return cli.printFailure("No decks")
	}

	w := tabwriter.NewWriter(cli.stdoutWriter, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	for _, deck := range decks {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", deck.ID, deck.Title, deck.Description); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return w.Flush()
}

// CreateDeck creates a deck with cards read from a CSV file.
func (cli *TinycardsCLI) CreateDeck(ctx context.Context, input CreateDeckInput) error {
	current, err := cli.api.Session()
	if err != nil {
		return fmt.Errorf("api.Session > %w", err)
	}

	deck := model.NewDeck(input.Title)
	deck.UserID = current.UserID
	deck.Description = input.Description
	deck.Cover = input.Cover
	if input.CSVPath != "" {
		if err := addCardsFromFile(deck, input.CSVPath); err != nil {
			return err
		}
	}

	created, err := cli.api.CreateDeck(ctx, deck, tinycards.WithEncoding(input.Encoding))
	if err != nil {
		return fmt.Errorf("api.CreateDeck > %w", err)
	}
	return cli.printSuccess("Created the deck %q (%s) with %d cards", created.Title, created.ID, len(deck.Cards))
}

// ImportCards appends the cards of a CSV file to an existing deck.
func (cli *TinycardsCLI) ImportCards(ctx context.Context, title, csvPath string) error {
	deck, err := cli.findDeckWithCards(ctx, title)
	if err != nil {
		return err
	}
	before := len(deck.Cards)
	if err := addCardsFromFile(deck, csvPath); err != nil {
		return err
	}

	updated, err := cli.api.UpdateDeck(ctx, deck, tinycards.WithEncoding(tinycards.EncodingJSON))
	if err != nil {
		return fmt.Errorf("api.UpdateDeck > %w", err)
	}
	return cli.printSuccess("Imported %d cards into the deck %q, which has %d cards now",
		len(deck.Cards)-before, updated.Title, len(updated.Cards))
}

// ExportDeck writes the cards of a deck as a CSV file, a PDF file, or CSV on standard output.
func (cli *TinycardsCLI) ExportDeck(ctx context.Context, input ExportDeckInput) error {
	deck, err := cli.findDeckWithCards(ctx, input.Title)
	if err != nil {
		return err
	}

	if input.CSVPath == "" && input.PDFPath == "" {
		return deck.WriteCSV(cli.stdoutWriter)
	}
	if input.CSVPath != "" {
		if err := writeCSVFile(deck, input.CSVPath); err != nil {
			return err
		}
		if err := cli.printSuccess("Exported %d cards to %s", len(deck.Cards), input.CSVPath); err != nil {
			return err
		}
	}
	if input.PDFPath != "" {
		markdown, err := export.DeckToMarkdown(deck, cli.templatePath)
		if err != nil {
			return fmt.Errorf("export.DeckToMarkdown > %w", err)
		}
		pdfPath, err := export.MarkdownToPDF(markdown, input.PDFPath)
		if err != nil {
			return fmt.Errorf("export.MarkdownToPDF > %w", err)
		}
		if err := cli.printSuccess("Exported %d cards to %s", len(deck.Cards), pdfPath); err != nil {
			return err
		}
	}
	return nil
}

func (cli *TinycardsCLI) DeleteDeck(ctx context.Context, title string) error {
	deck, err := cli.api.FindDeckByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("api.FindDeckByTitle > %w", err)
	}
	deleted, err := cli.api.DeleteDeck(ctx, deck.ID)
	if err != nil {
		return fmt.Errorf("api.DeleteDeck > %w", err)
	}
	return cli.printSuccess("Deleted the deck %q (%s)", deleted.Title, deleted.ID)
}

func (cli *TinycardsCLI) findDeckWithCards(ctx context.Context, title string) (*model.Deck, error) {
	found, err := cli.api.FindDeckByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("api.FindDeckByTitle > %w", err)
	}
	deck, err := cli.api.GetDeck(ctx, found.ID, true)
	if err != nil {
		return nil, fmt.Errorf("api.GetDeck > %w", err)
	}
	return deck, nil
}

func addCardsFromFile(deck *model.Deck, csvPath string) error {
	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("os.Open(%s) > %w", csvPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := deck.AddCardsFromCSV(file); err != nil {
		return fmt.Errorf("deck.AddCardsFromCSV(%s) > %w", csvPath, err)
	}
	slog.Debug("read cards", "path", csvPath, "cards", len(deck.Cards))
	return nil
}

func writeCSVFile(deck *model.Deck, csvPath string) (err error) {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", csvPath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close(%s) > %w", csvPath, closeErr)
		}
	}()

	if err := deck.WriteCSV(file); err != nil {
		return fmt.Errorf("deck.WriteCSV(%s) > %w", csvPath, err)
	}
	return nil
}
