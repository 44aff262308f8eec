package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/tinycards/internal/form"
	"github.com/at-ishikawa/tinycards/internal/model"
)

func TestDecodeDeck(t *testing.T) {
	t.Run("without cards", func(t *testing.T) {
		got, err := DecodeDeck(mustJSON(t, deckJSON()))
		require.NoError(t, err)
		assert.Equal(t, &model.Deck{
			ID:                       "deck-id",
			CompactID:                "abc12",
			Slug:                     "test-deck",
			UserID:                   1,
			Title:                    "Test Deck",
			Description:              "A deck for tests",
			ImageURL:                 "https://example.com/image.jpg",
			CoverImageURL:            "https://example.com/cover.jpg",
			Private:                  true,
			Shareable:                false,
			Cards:                    []*model.Card{},
			BlacklistedSideIndices:   []int{1},
			BlacklistedQuestionTypes: []string{"ASSISTED_PRACTICE"},
			GradingModes:             []string{"TYPING"},
			TTSLanguages:             []string{"ja", "en"},
		}, got)
	})

	t.Run("with cards", func(t *testing.T) {
		input := deckJSON()
		input["cards"] = []any{
			cardJSON("front 1", "back 1"),
			cardJSON("front 2", "back 2"),
		}

		got, err := DecodeDeck(mustJSON(t, input))
		require.NoError(t, err)
		require.Len(t, got.Cards, 2)
		assert.Equal(t, "front 2", got.Cards[1].Front.Text())
		assert.Equal(t, "back 2", got.Cards[1].Back.Text())
	})

	t.Run("optional fields", func(t *testing.T) {
		input := without(without(deckJSON(), "userId"), "blacklistedQuestionTypes")

		got, err := DecodeDeck(mustJSON(t, input))
		require.NoError(t, err)
		assert.Zero(t, got.UserID)
		assert.Nil(t, got.BlacklistedQuestionTypes)
	})

	t.Run("invalid card", func(t *testing.T) {
		input := deckJSON()
		input["cards"] = []any{without(cardJSON("front", "back"), "id")}

		_, err := DecodeDeck(mustJSON(t, input))
		var missingFieldErr *MissingFieldError
		require.ErrorAs(t, err, &missingFieldErr)
		assert.Equal(t, &MissingFieldError{Entity: "card", Field: "id"}, missingFieldErr)
	})

	requiredFields := []string{
		"name", "description", "id", "compactId", "slug", "imageUrl", "coverImageUrl",
		"private", "shareable", "blacklistedSideIndices", "gradingModes", "ttsLanguages",
	}
	for _, field := range requiredFields {
		t.Run("missing "+field, func(t *testing.T) {
			got, err := DecodeDeck(mustJSON(t, without(deckJSON(), field)))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Equal(t, &MissingFieldError{Entity: "deck", Field: field}, err)
		})
	}

	t.Run("not an object", func(t *testing.T) {
		_, err := DecodeDeck([]byte(`["deck"]`))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissingField)
	})
}

func TestDeckJSONPayload(t *testing.T) {
	tests := []struct {
		name  string
		deck  *model.Deck
		want  map[string]any
		check func(t *testing.T, got map[string]any)
	}{
		{
			name: "empty deck",
			deck: &model.Deck{Title: "Test Deck", Description: "Description"},
			want: map[string]any{
				"name":                   "Test Deck",
				"description":            "Description",
				"private":                false,
				"shareable":              false,
				"cards":                  []map[string]any{},
				"ttsLanguages":           []string{},
				"blacklistedSideIndices": []int{},
				"gradingModes":           []string{},
				"fromLanguage":           "en",
			},
		},
		{
			name: "cover and options",
			deck: &model.Deck{
				Title:                  "Test Deck",
				Private:                true,
				Shareable:              true,
				Cover:                  "/tmp/cover.png",
				CoverImageURL:          "https://example.com/cover.jpg",
				TTSLanguages:           []string{"ja"},
				BlacklistedSideIndices: []int{0},
				GradingModes:           []string{"TYPING"},
			},
			want: map[string]any{
				"name":                   "Test Deck",
				"description":            "",
				"private":                true,
				"shareable":              true,
				"cards":                  []map[string]any{},
				"ttsLanguages":           []string{"ja"},
				"blacklistedSideIndices": []int{0},
				"gradingModes":           []string{"TYPING"},
				"fromLanguage":           "en",
				"imageFile":              "/tmp/cover.png",
				"coverImageUrl":          "https://example.com/cover.jpg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeckJSONPayload(tt.deck))
		})
	}
}

func TestDeckMultipartFields(t *testing.T) {
	deck := model.NewDeck("Test Deck")
	deck.Description = "Description"
	deck.Cover = "https://example.com/cover.png"
	require.NoError(t, deck.AddCard([]string{"front word", "back word"}))

	got, err := DeckMultipartFields(deck)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, field := range got {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{
		"name", "description", "private", "shareable", "cards", "ttsLanguages",
		"blacklistedSideIndices", "gradingModes", "fromLanguage", form.ImageFieldName,
	}, names)

	assert.Equal(t, "Test Deck", got[0].Value)
	assert.Equal(t, false, got[2].Value)
	assert.IsType(t, "", got[4].Value)
	assert.Contains(t, got[4].Value, `"text":"front word"`)
	assert.Equal(t, "[]", got[5].Value)
	assert.Equal(t, "[]", got[6].Value)
	assert.Equal(t, "[]", got[7].Value)
	assert.Equal(t, "en", got[8].Value)
	assert.Equal(t, "https://example.com/cover.png", got[9].Value)
}

func TestDeck_RoundTrip(t *testing.T) {
	deck := model.NewDeck("Test Deck")
	pairs := [][]string{
		{"front 1", "back 1"},
		{"front 2", "back 2"},
		{"日本語", "Japanese"},
	}
	for _, pair := range pairs {
		require.NoError(t, deck.AddCard(pair))
	}

	got, err := DecodeDeck(mustJSON(t, withServerFields(t, DeckJSONPayload(deck))))
	require.NoError(t, err)

	assert.Equal(t, deck.Title, got.Title)
	require.Len(t, got.Cards, len(pairs))
	for i, pair := range pairs {
		assert.Equal(t, pair[0], got.Cards[i].Front.Text())
		assert.Equal(t, pair[1], got.Cards[i].Back.Text())
	}
}
