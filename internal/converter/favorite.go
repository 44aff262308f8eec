package converter

import (
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/tinycards/internal/model"
)

func DecodeFavorite(data []byte) (*model.Favorite, error) {
	obj, err := newObject("favorite", data)
	if err != nil {
		return nil, err
	}

	var favorite model.Favorite
	var rawDeck json.RawMessage
	obj.required("id", &favorite.ID)
	obj.required("deck", &rawDeck)
	if obj.err != nil {
		return nil, obj.err
	}

	if favorite.Deck, err = DecodeDeck(rawDeck); err != nil {
		return nil, fmt.Errorf("favorite %s > %w", favorite.ID, err)
	}
	return &favorite, nil
}

func EncodeFavorite(favorite *model.Favorite) map[string]any {
	return map[string]any{
		"id":   favorite.ID,
		"deck": DeckJSONPayload(favorite.Deck),
	}
}
