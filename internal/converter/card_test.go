package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/tinycards/internal/model"
)

func TestDecodeFact(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]any
		want      model.Fact
		wantField string
	}{
		{
			name:  "text fact",
			input: factJSON(),
			want: model.Fact{
				ID:   "fact-id",
				Text: "front word",
				Type: model.FactTypeText,
			},
		},
		{
			name: "image fact without text",
			input: map[string]any{
				"id":       "fact-id",
				"type":     "IMAGE",
				"imageUrl": "https://example.com/fact.png",
				"ttsUrl":   "https://example.com/fact.mp3",
			},
			want: model.Fact{
				ID:       "fact-id",
				Type:     model.FactTypeImage,
				ImageURL: "https://example.com/fact.png",
				TTSURL:   "https://example.com/fact.mp3",
			},
		},
		{
			name:      "missing id",
			input:     without(factJSON(), "id"),
			wantField: "id",
		},
		{
			name:      "missing type",
			input:     without(factJSON(), "type"),
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFact(mustJSON(t, tt.input))
			if tt.wantField != "" {
				assert.ErrorIs(t, err, ErrMissingField)
				var missingFieldErr *MissingFieldError
				require.ErrorAs(t, err, &missingFieldErr)
				assert.Equal(t, "fact", missingFieldErr.Entity)
				assert.Equal(t, tt.wantField, missingFieldErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFact(t *testing.T) {
	assert.Equal(t, map[string]any{
		"text": "word",
		"type": "TEXT",
	}, EncodeFact(model.Fact{ID: "id", Text: "word", Type: model.FactTypeText}))

	assert.Equal(t, map[string]any{
		"text":     "",
		"type":     "IMAGE",
		"imageUrl": "https://example.com/fact.png",
	}, EncodeFact(model.Fact{ID: "id", Type: model.FactTypeImage, ImageURL: "https://example.com/fact.png"}))
}

func TestDecodeConcept(t *testing.T) {
	t.Run("timestamps", func(t *testing.T) {
		got, err := DecodeConcept(mustJSON(t, conceptJSON(factJSON())))
		require.NoError(t, err)
		assert.Equal(t, "concept-id", got.ID)
		assert.Equal(t, int64(1), got.UserID)
		assert.Equal(t, "front word", got.Fact.Text)
		assert.True(t, got.CreatedAt.Equal(time.Unix(1525016339, int64(500*time.Millisecond))))
		assert.True(t, got.UpdatedAt.Equal(time.Unix(1525016340, 0)))
	})

	t.Run("updatedAt defaults to createdAt", func(t *testing.T) {
		got, err := DecodeConcept(mustJSON(t, without(conceptJSON(factJSON()), "updatedAt")))
		require.NoError(t, err)
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("missing createdAt", func(t *testing.T) {
		_, err := DecodeConcept(mustJSON(t, without(conceptJSON(factJSON()), "createdAt")))
		assert.Equal(t, &MissingFieldError{Entity: "concept", Field: "createdAt"}, err)
	})

	t.Run("missing field in the fact is propagated", func(t *testing.T) {
		_, err := DecodeConcept(mustJSON(t, conceptJSON(without(factJSON(), "type"))))
		var missingFieldErr *MissingFieldError
		require.ErrorAs(t, err, &missingFieldErr)
		assert.Equal(t, &MissingFieldError{Entity: "fact", Field: "type"}, missingFieldErr)
	})
}

func TestDecodeSide(t *testing.T) {
	got, err := DecodeSide(mustJSON(t, sideJSON("front word")))
	require.NoError(t, err)
	assert.Equal(t, "side-front word", got.ID)
	assert.Equal(t, "front word", got.Text())
	assert.Len(t, got.Concepts, 1)

	_, err = DecodeSide(mustJSON(t, without(sideJSON("word"), "concepts")))
	assert.Equal(t, &MissingFieldError{Entity: "side", Field: "concepts"}, err)
}

func TestDecodeSide_NoConcepts(t *testing.T) {
	tests := []struct {
		name     string
		concepts any
	}{
		{
			name:     "empty concepts",
			concepts: []any{},
		},
		{
			name:     "null concepts",
			concepts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sideJSON("word")
			input["concepts"] = tt.concepts

			got, err := DecodeSide(mustJSON(t, input))
			assert.Nil(t, got)
			var missingFieldErr *MissingFieldError
			require.ErrorAs(t, err, &missingFieldErr)
			assert.Equal(t, &MissingFieldError{Entity: "side", Field: "concepts[0]"}, missingFieldErr)

			card := cardJSON("front word", "back word")
			card["sides"] = []any{input, input}
			_, err = DecodeCard(mustJSON(t, card))
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestDecodeCard(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]any
		wantFront string
		wantBack  string
		wantField *MissingFieldError
	}{
		{
			name:      "front and back",
			input:     cardJSON("front word", "back word"),
			wantFront: "front word",
			wantBack:  "back word",
		},
		{
			name:      "without optional fields",
			input:     without(without(cardJSON("front word", "back word"), "userId"), "creationTimestamp"),
			wantFront: "front word",
			wantBack:  "back word",
		},
		{
			name: "single side",
			input: map[string]any{
				"id":    "card-id",
				"sides": []any{sideJSON("front word")},
			},
			wantField: &MissingFieldError{Entity: "card", Field: "sides[1]"},
		},
		{
			name:      "missing sides",
			input:     without(cardJSON("front word", "back word"), "sides"),
			wantField: &MissingFieldError{Entity: "card", Field: "sides"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCard(mustJSON(t, tt.input))
			if tt.wantField != nil {
				assert.Nil(t, got)
				var missingFieldErr *MissingFieldError
				require.ErrorAs(t, err, &missingFieldErr)
				assert.Equal(t, tt.wantField, missingFieldErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "card-id", got.ID)
			assert.Equal(t, tt.wantFront, got.Front.Text())
			assert.Equal(t, tt.wantBack, got.Back.Text())
		})
	}
}

func TestDecodeCard_CreationTimestamp(t *testing.T) {
	got, err := DecodeCard(mustJSON(t, cardJSON("front", "back")))
	require.NoError(t, err)
	assert.Equal(t, int64(1525016339000), got.CreationTimestamp())
	assert.Equal(t, int64(1), got.UserID)
}

func TestDecodeCard_WithoutCreationTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{
			name:  "missing key",
			input: without(cardJSON("front", "back"), "creationTimestamp"),
		},
		{
			name: "null value",
			input: func() map[string]any {
				card := cardJSON("front", "back")
				card["creationTimestamp"] = nil
				return card
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now().Add(-time.Second)
			got, err := DecodeCard(mustJSON(t, tt.input))
			require.NoError(t, err)
			assert.False(t, got.CreatedAt.Before(before.Truncate(time.Second)))

			encoded := EncodeCard(got)
			timestamp, ok := encoded["creationTimestamp"].(int64)
			require.True(t, ok)
			assert.Positive(t, timestamp)
		})
	}
}

func TestEncodeCard(t *testing.T) {
	card := model.NewCardFromText("front word", "back word", 1)
	card.CreatedAt = time.Unix(1525016339, 0)

	got := EncodeCard(card)

	assert.Equal(t, map[string]any{
		"creationTimestamp": int64(1525016339000),
		"sides": []map[string]any{
			{
				"concepts": []map[string]any{
					{"fact": map[string]any{"text": "front word", "type": "TEXT"}},
				},
			},
			{
				"concepts": []map[string]any{
					{"fact": map[string]any{"text": "back word", "type": "TEXT"}},
				},
			},
		},
	}, got)
}
