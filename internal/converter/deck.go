package converter

import (
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/tinycards/internal/form"
	"github.com/at-ishikawa/tinycards/internal/model"
)

const defaultFromLanguage = "en"

// fields serialized to a JSON string inside a multipart form
var multipartJSONFields = map[string]struct{}{
	"cards":                  {},
	"blacklistedSideIndices": {},
	"gradingModes":           {},
	"ttsLanguages":           {},
}

// DecodeDeck decodes a deck. Cards are decoded only when the response includes them.
// The cover reference is never filled since the service only returns its URLs.
func DecodeDeck(data []byte) (*model.Deck, error) {
	obj, err := newObject("deck", data)
	if err != nil {
		return nil, err
	}

	var deck model.Deck
	var rawCards []json.RawMessage
	obj.required("name", &deck.Title)
	obj.required("description", &deck.Description)
	obj.required("id", &deck.ID)
	obj.required("compactId", &deck.CompactID)
	obj.required("slug", &deck.Slug)
	obj.required("imageUrl", &deck.ImageURL)
	obj.required("coverImageUrl", &deck.CoverImageURL)
	obj.required("private", &deck.Private)
	obj.required("shareable", &deck.Shareable)
	obj.required("blacklistedSideIndices", &deck.BlacklistedSideIndices)
	obj.required("gradingModes", &deck.GradingModes)
	obj.required("ttsLanguages", &deck.TTSLanguages)
	obj.optional("blacklistedQuestionTypes", &deck.BlacklistedQuestionTypes)
	obj.optional("userId", &deck.UserID)
	obj.optional("cards", &rawCards)
	if obj.err != nil {
		return nil, obj.err
	}

	deck.Cards = make([]*model.Card, 0, len(rawCards))
	for i, rawCard := range rawCards {
		card, err := DecodeCard(rawCard)
		if err != nil {
			return nil, fmt.Errorf("deck %s: cards[%d] > %w", deck.ID, i, err)
		}
		deck.Cards = append(deck.Cards, card)
	}
	return &deck, nil
}

// deckFields lists the fields sent when a deck is created or updated, in the order of the web client.
func deckFields(deck *model.Deck) []form.Field {
	cards := make([]map[string]any, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		cards = append(cards, EncodeCard(card))
	}

	fields := []form.Field{
		{Name: "name", Value: deck.Title},
		{Name: "description", Value: deck.Description},
		{Name: "private", Value: deck.Private},
		{Name: "shareable", Value: deck.Shareable},
		{Name: "cards", Value: cards},
		{Name: "ttsLanguages", Value: nonNil(deck.TTSLanguages)},
		{Name: "blacklistedSideIndices", Value: nonNil(deck.BlacklistedSideIndices)},
		{Name: "gradingModes", Value: nonNil(deck.GradingModes)},
		{Name: "fromLanguage", Value: defaultFromLanguage},
	}
	if deck.Cover != "" {
		fields = append(fields, form.Field{Name: form.ImageFieldName, Value: deck.Cover})
	}
	if deck.CoverImageURL != "" {
		fields = append(fields, form.Field{Name: "coverImageUrl", Value: deck.CoverImageURL})
	}
	return fields
}

// DeckJSONPayload encodes a deck as the body of a JSON request.
func DeckJSONPayload(deck *model.Deck) map[string]any {
	fields := deckFields(deck)
	payload := make(map[string]any, len(fields))
	for _, field := range fields {
		payload[field.Name] = field.Value
	}
	return payload
}

// DeckMultipartFields encodes a deck as the fields of a multipart form.
// List fields are serialized to JSON strings.
func DeckMultipartFields(deck *model.Deck) ([]form.Field, error) {
	fields := deckFields(deck)
	for i, field := range fields {
		if _, ok := multipartJSONFields[field.Name]; !ok {
			continue
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal(%s) > %w", field.Name, err)
		}
		fields[i].Value = string(value)
	}
	return fields, nil
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
