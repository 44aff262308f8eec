package converter

import (
	"encoding/json"
	"maps"
	"testing"

	"github.com/stretchr/testify/require"
)

func factJSON() map[string]any {
	return map[string]any{
		"id":   "fact-id",
		"text": "front word",
		"type": "TEXT",
	}
}

func conceptJSON(fact map[string]any) map[string]any {
	return map[string]any{
		"id":        "concept-id",
		"fact":      fact,
		"userId":    float64(1),
		"createdAt": 1525016339.5,
		"updatedAt": 1525016340.0,
	}
}

func sideJSON(text string) map[string]any {
	fact := factJSON()
	fact["text"] = text
	return map[string]any{
		"id":       "side-" + text,
		"userId":   float64(1),
		"concepts": []any{conceptJSON(fact)},
	}
}

func cardJSON(front, back string) map[string]any {
	return map[string]any{
		"id":                "card-id",
		"userId":            float64(1),
		"creationTimestamp": float64(1525016339000),
		"sides":             []any{sideJSON(front), sideJSON(back)},
	}
}

func deckJSON() map[string]any {
	return map[string]any{
		"id":                       "deck-id",
		"compactId":                "abc12",
		"slug":                     "test-deck",
		"name":                     "Test Deck",
		"description":              "A deck for tests",
		"imageUrl":                 "https://example.com/image.jpg",
		"coverImageUrl":            "https://example.com/cover.jpg",
		"private":                  true,
		"shareable":                false,
		"blacklistedSideIndices":   []any{float64(1)},
		"blacklistedQuestionTypes": []any{"ASSISTED_PRACTICE"},
		"gradingModes":             []any{"TYPING"},
		"ttsLanguages":             []any{"ja", "en"},
		"userId":                   float64(1),
	}
}

func trendableJSON() map[string]any {
	return map[string]any{
		"id":   "trendable-id",
		"type": "DECK",
		"data": map[string]any{
			"blacklistedQuestionTypes": []any{},
			"blacklistedSideIndices":   []any{},
			"cardCount":                float64(12),
			"compactId":                "abc12",
			"coverImageUrl":            "https://example.com/cover.jpg",
			"createdAt":                1525016339.5,
			"deckGroups":               []any{"group"},
			"description":              "Trending deck",
			"enabled":                  true,
			"favoriteCount":            float64(3),
			"fromLanguage":             "en",
			"fullname":                 "Test User",
			"gradingModes":             []any{},
			"hashes":                   map[string]any{"image": "hash"},
			"id":                       "deck-id",
			"imageUrl":                 "https://example.com/image.jpg",
			"name":                     "Trending",
			"picture":                  "",
			"private":                  false,
			"shareable":                true,
			"slug":                     "trending",
			"tagIds":                   []any{"tag"},
			"ttsLanguages":             []any{"en"},
			"uiLanguage":               "en",
			"updatedAt":                1525016340.0,
			"userId":                   float64(1),
			"username":                 "test_user",
		},
	}
}

func userJSON() map[string]any {
	return map[string]any{
		"creationDate":      float64(1501235323),
		"email":             "user@example.com",
		"fullname":          "Test User",
		"id":                float64(123),
		"learningLanguage":  "ja",
		"pictureUrl":        "https://example.com/picture.jpg",
		"subscribed":        false,
		"subscriberCount":   float64(2),
		"subscriptionCount": float64(5),
		"uiLanguage":        "en",
		"username":          "test_user",
	}
}

func mustJSON(t *testing.T, value any) []byte {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return data
}

func without(object map[string]any, key string) map[string]any {
	result := maps.Clone(object)
	delete(result, key)
	return result
}

// withServerFields adds the fields the service assigns when it stores an encoded deck.
func withServerFields(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()

	var deck map[string]any
	require.NoError(t, json.Unmarshal(mustJSON(t, payload), &deck))
	deck["id"] = "deck-id"
	deck["compactId"] = "abc12"
	deck["slug"] = "deck"
	deck["imageUrl"] = ""
	deck["coverImageUrl"] = ""

	for _, card := range deck["cards"].([]any) {
		card := card.(map[string]any)
		card["id"] = "card-id"
		for _, side := range card["sides"].([]any) {
			side := side.(map[string]any)
			side["id"] = "side-id"
			for _, concept := range side["concepts"].([]any) {
				concept := concept.(map[string]any)
				concept["id"] = "concept-id"
				concept["createdAt"] = 1525016339.0
				concept["fact"].(map[string]any)["id"] = "fact-id"
			}
		}
	}
	return deck
}
