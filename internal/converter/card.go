// Package converter converts the entities of the model package from and to the JSON objects of the service.
//
// Decoding follows an explicit schema per entity: a missing required key fails with a *MissingFieldError.
// The conversion is lossy: identifiers and timestamps are assigned by the service and are not sent back.
package converter

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/at-ishikawa/tinycards/internal/model"
)

func DecodeFact(data []byte) (model.Fact, error) {
	obj, err := newObject("fact", data)
	if err != nil {
		return model.Fact{}, err
	}

	var fact model.Fact
	var factType string
	obj.required("id", &fact.ID)
	obj.required("type", &factType)
	obj.optional("text", &fact.Text)
	obj.optional("imageUrl", &fact.ImageURL)
	obj.optional("ttsUrl", &fact.TTSURL)
	if obj.err != nil {
		return model.Fact{}, obj.err
	}
	fact.Type = model.FactType(factType)
	return fact, nil
}

func EncodeFact(fact model.Fact) map[string]any {
	result := map[string]any{
		"text": fact.Text,
		"type": string(fact.Type),
	}
	if fact.ImageURL != "" {
		result["imageUrl"] = fact.ImageURL
	}
	if fact.TTSURL != "" {
		result["ttsUrl"] = fact.TTSURL
	}
	return result
}

func DecodeConcept(data []byte) (model.Concept, error) {
	obj, err := newObject("concept", data)
	if err != nil {
		return model.Concept{}, err
	}

	var concept model.Concept
	var rawFact json.RawMessage
	var createdAt, updatedAt float64
	obj.required("id", &concept.ID)
	obj.required("fact", &rawFact)
	obj.required("createdAt", &createdAt)
	obj.optional("userId", &concept.UserID)
	hasUpdatedAt := obj.optional("updatedAt", &updatedAt)
	if obj.err != nil {
		return model.Concept{}, obj.err
	}

	fact, err := DecodeFact(rawFact)
	if err != nil {
		return model.Concept{}, fmt.Errorf("concept %s > %w", concept.ID, err)
	}
	concept.Fact = fact
	concept.CreatedAt = timeFromEpochSeconds(createdAt)
	concept.UpdatedAt = concept.CreatedAt
	if hasUpdatedAt {
		concept.UpdatedAt = timeFromEpochSeconds(updatedAt)
	}
	return concept, nil
}

func EncodeConcept(concept model.Concept) map[string]any {
	return map[string]any{
		"fact": EncodeFact(concept.Fact),
	}
}

func DecodeSide(data []byte) (*model.Side, error) {
	obj, err := newObject("side", data)
	if err != nil {
		return nil, err
	}

	var side model.Side
	var rawConcepts []json.RawMessage
	obj.required("id", &side.ID)
	obj.required("concepts", &rawConcepts)
	obj.optional("userId", &side.UserID)
	if obj.err == nil && len(rawConcepts) == 0 {
		obj.fail(&MissingFieldError{Entity: "side", Field: "concepts[0]"})
	}
	if obj.err != nil {
		return nil, obj.err
	}

	side.Concepts = make([]model.Concept, 0, len(rawConcepts))
	for i, rawConcept := range rawConcepts {
		concept, err := DecodeConcept(rawConcept)
		if err != nil {
			return nil, fmt.Errorf("side %s: concepts[%d] > %w", side.ID, i, err)
		}
		side.Concepts = append(side.Concepts, concept)
	}
	return &side, nil
}

func EncodeSide(side *model.Side) map[string]any {
	concepts := make([]map[string]any, 0, len(side.Concepts))
	for _, concept := range side.Concepts {
		concepts = append(concepts, EncodeConcept(concept))
	}
	return map[string]any{
		"concepts": concepts,
	}
}

// DecodeCard decodes a card. The first side is the front and the second one is the back.
func DecodeCard(data []byte) (*model.Card, error) {
	obj, err := newObject("card", data)
	if err != nil {
		return nil, err
	}

	var card model.Card
	var rawSides []json.RawMessage
	var creationTimestamp float64
	obj.required("id", &card.ID)
	obj.required("sides", &rawSides)
	obj.optional("userId", &card.UserID)
	hasCreationTimestamp := obj.optional("creationTimestamp", &creationTimestamp)
	if obj.err == nil && len(rawSides) < 2 {
		obj.fail(&MissingFieldError{Entity: "card", Field: fmt.Sprintf("sides[%d]", len(rawSides))})
	}
	if obj.err != nil {
		return nil, obj.err
	}

	if card.Front, err = DecodeSide(rawSides[0]); err != nil {
		return nil, fmt.Errorf("card %s: front > %w", card.ID, err)
	}
	if card.Back, err = DecodeSide(rawSides[1]); err != nil {
		return nil, fmt.Errorf("card %s: back > %w", card.ID, err)
	}
	card.CreatedAt = time.Now().Truncate(time.Second)
	if hasCreationTimestamp {
		card.CreatedAt = time.UnixMilli(int64(creationTimestamp))
	}
	return &card, nil
}

func EncodeCard(card *model.Card) map[string]any {
	return map[string]any{
		"creationTimestamp": card.CreationTimestamp(),
		"sides": []map[string]any{
			EncodeSide(card.Front),
			EncodeSide(card.Back),
		},
	}
}

// the service sends concept timestamps as fractional seconds since the epoch
func timeFromEpochSeconds(seconds float64) time.Time {
	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}
