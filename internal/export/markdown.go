// Package export renders decks as printable documents.
package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/at-ishikawa/tinycards/internal/assets"
	"github.com/at-ishikawa/tinycards/internal/model"
)

// DeckToMarkdown renders a deck with the template at templatePath, or with the embedded one.
// Card texts come from other users, so markup in them is removed.
func DeckToMarkdown(deck *model.Deck, templatePath string) ([]byte, error) {
	policy := bluemonday.StrictPolicy()
	sanitize := func(text string) string {
		return strings.TrimSpace(html.UnescapeString(policy.Sanitize(text)))
	}

	data := assets.DeckTemplate{
		Title:       sanitize(deck.Title),
		Description: sanitize(deck.Description),
		Cards:       make([]assets.DeckCard, 0, len(deck.Cards)),
	}
	for _, card := range deck.Cards {
		data.Cards = append(data.Cards, assets.DeckCard{
			Front: sanitize(card.Front.Text()),
			Back:  sanitize(card.Back.Text()),
		})
	}

	var output bytes.Buffer
	if err := assets.WriteDeck(&output, templatePath, data); err != nil {
		return nil, fmt.Errorf("assets.WriteDeck > %w", err)
	}
	return output.Bytes(), nil
}
