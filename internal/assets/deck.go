package assets

import (
	"fmt"
	"io"
)

// DeckTemplate is the data of a deck template
type DeckTemplate struct {
	Title       string
	Description string
	Cards       []DeckCard
}

type DeckCard struct {
	Front string
	Back  string
}

func WriteDeck(output io.Writer, templatePath string, templateData DeckTemplate) error {
	tmpl, err := ParseDeckTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseDeckTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
