package model

import "fmt"

// Deck is a named collection of cards together with its presentation options.
type Deck struct {
	ID        string
	CompactID string
	Slug      string
	UserID    int64

	Title       string
	Description string

	// Cover is a local file path or an http(s) URL of an image uploaded as the deck cover.
	// It is only sent to the service and never filled from a response.
	Cover         string
	ImageURL      string
	CoverImageURL string

	Private   bool
	Shareable bool

	Cards []*Card

	BlacklistedSideIndices   []int
	BlacklistedQuestionTypes []string
	GradingModes             []string
	TTSLanguages             []string
}

func NewDeck(title string) *Deck {
	return &Deck{
		Title: title,
		Cards: []*Card{},
	}
}

// AddCard appends a text card built from a (front, back) pair.
func (deck *Deck) AddCard(pair []string) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrInvalidCardPair, len(pair))
	}
	deck.Cards = append(deck.Cards, NewCardFromText(pair[0], pair[1], deck.UserID))
	return nil
}

func (deck *Deck) String() string {
	return fmt.Sprintf("Deck{ID: %s, Title: %q, Cards: %d}", deck.ID, deck.Title, len(deck.Cards))
}
