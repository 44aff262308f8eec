package tinycards

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"resty.dev/v3"

	"github.com/at-ishikawa/tinycards/internal/converter"
	"github.com/at-ishikawa/tinycards/internal/form"
	"github.com/at-ishikawa/tinycards/internal/model"
)

// Encoding is the body format used to send a deck.
type Encoding int

const (
	EncodingMultipart Encoding = iota
	EncodingJSON
)

func (e Encoding) String() string {
	switch e {
	case EncodingMultipart:
		return "multipart"
	case EncodingJSON:
		return "json"
	}
	return "unknown(" + strconv.Itoa(int(e)) + ")"
}

type deckOptions struct {
	encoding Encoding
}

type DeckOption func(*deckOptions)

// WithEncoding selects the body format. Only a multipart body uploads the cover image.
func WithEncoding(encoding Encoding) DeckOption {
	return func(options *deckOptions) {
		options.encoding = encoding
	}
}

func deckPath(deckID string) string {
	return "/decks/" + url.PathEscape(deckID)
}

// GetDecks returns the decks of the logged-in user without their cards.
func (client *Client) GetDecks(ctx context.Context) ([]*model.Deck, error) {
	userID, err := client.requireUserID()
	if err != nil {
		return nil, err
	}

	body, err := client.get(ctx, "GetDecks", "/decks", map[string]string{
		"userId": strconv.FormatInt(userID, 10),
	})
	if err != nil {
		return nil, err
	}
	decks, err := decodeList(body, "decks", converter.DecodeDeck)
	if err != nil {
		return nil, err
	}
	for _, deck := range decks {
		deck.UserID = userID
	}
	return decks, nil
}

func (client *Client) GetDeck(ctx context.Context, deckID string, includeCards bool) (*model.Deck, error) {
	if deckID == "" {
		return nil, ErrEmptyDeckID
	}
	var query map[string]string
	if includeCards {
		query = map[string]string{"expand": "true"}
	}

	body, err := client.get(ctx, "GetDeck", deckPath(deckID), query)
	if err != nil {
		return nil, err
	}
	deck, err := converter.DecodeDeck(body)
	if err != nil {
		return nil, err
	}
	deck.ID = deckID
	deck.UserID = client.userID
	return deck, nil
}

// FindDeckByTitle returns the deck of the logged-in user with the title, without its cards.
func (client *Client) FindDeckByTitle(ctx context.Context, title string) (*model.Deck, error) {
	decks, err := client.GetDecks(ctx)
	if err != nil {
		return nil, err
	}

	var found []*model.Deck
	for _, deck := range decks {
		if deck.Title == title {
			found = append(found, deck)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrDeckNotFound, title)
	case 1:
		return found[0], nil
	}

	deckIDs := make([]string, 0, len(found))
	for _, deck := range found {
		deckIDs = append(deckIDs, deck.ID)
	}
	return nil, &AmbiguousTitleError{Title: title, DeckIDs: deckIDs}
}

// CreateDeck creates a deck for the logged-in user. The deck is sent as a multipart form by default.
func (client *Client) CreateDeck(ctx context.Context, deck *model.Deck, opts ...DeckOption) (*model.Deck, error) {
	userID, err := client.requireUserID()
	if err != nil {
		return nil, err
	}
	options := deckOptions{encoding: EncodingMultipart}
	for _, opt := range opts {
		opt(&options)
	}

	prepare, err := client.deckBody(ctx, deck, options.encoding)
	if err != nil {
		return nil, fmt.Errorf("CreateDeck > %w", err)
	}
	body, err := client.send(ctx, http.MethodPost, "/decks", prepare)
	if err != nil {
		return nil, fmt.Errorf("CreateDeck > %w", err)
	}
	created, err := converter.DecodeDeck(body)
	if err != nil {
		return nil, fmt.Errorf("CreateDeck > %w", err)
	}
	created.UserID = userID
	slog.Default().Info("Created a deck", "id", created.ID, "title", created.Title, "cards", len(deck.Cards))
	return created, nil
}

// UpdateDeck replaces a deck and returns it as stored by the service, with its cards.
// The deck is sent as JSON by default.
func (client *Client) UpdateDeck(ctx context.Context, deck *model.Deck, opts ...DeckOption) (*model.Deck, error) {
	if deck.ID == "" {
		return nil, ErrEmptyDeckID
	}
	options := deckOptions{encoding: EncodingJSON}
	for _, opt := range opts {
		opt(&options)
	}

	prepare, err := client.deckBody(ctx, deck, options.encoding)
	if err != nil {
		return nil, fmt.Errorf("UpdateDeck > %w", err)
	}
	if _, err := client.send(ctx, http.MethodPatch, deckPath(deck.ID), prepare); err != nil {
		return nil, fmt.Errorf("UpdateDeck > %w", err)
	}
	return client.GetDeck(ctx, deck.ID, true)
}

// DeleteDeck deletes a deck and returns it.
func (client *Client) DeleteDeck(ctx context.Context, deckID string) (*model.Deck, error) {
	if deckID == "" {
		return nil, ErrEmptyDeckID
	}

	body, err := client.send(ctx, http.MethodDelete, deckPath(deckID), nil)
	if err != nil {
		return nil, fmt.Errorf("DeleteDeck > %w", err)
	}
	deleted, err := converter.DecodeDeck(body)
	if err != nil {
		return nil, fmt.Errorf("DeleteDeck > %w", err)
	}
	return deleted, nil
}

func (client *Client) deckBody(ctx context.Context, deck *model.Deck, encoding Encoding) (func(*resty.Request), error) {
	switch encoding {
	case EncodingJSON:
		payload := converter.DeckJSONPayload(deck)
		if _, ok := payload[form.ImageFieldName]; ok {
			slog.Default().Warn("The cover image is only uploaded with a multipart body", "cover", deck.Cover)
			delete(payload, form.ImageFieldName)
		}
		return func(request *resty.Request) {
			request.SetBody(payload)
		}, nil
	case EncodingMultipart:
		fields, err := converter.DeckMultipartFields(deck)
		if err != nil {
			return nil, fmt.Errorf("converter.DeckMultipartFields > %w", err)
		}
		multipartForm, err := client.encoder.Encode(ctx, fields, "")
		if err != nil {
			return nil, fmt.Errorf("encoder.Encode > %w", err)
		}
		return func(request *resty.Request) {
			request.SetHeader("Content-Type", multipartForm.ContentType())
			request.SetBody(multipartForm.Body)
		}, nil
	}
	return nil, fmt.Errorf("unknown encoding: %s", encoding)
}
