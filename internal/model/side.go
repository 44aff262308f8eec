package model

import "fmt"

// Side is one face of a card.
type Side struct {
	ID       string
	UserID   int64
	Concepts []Concept
}

// NewSide creates a side from one or more concepts.
func NewSide(userID int64, concepts ...Concept) (*Side, error) {
	if len(concepts) == 0 {
		return nil, ErrEmptySide
	}
	return &Side{
		ID:       newID(),
		UserID:   userID,
		Concepts: concepts,
	}, nil
}

// NewTextSide creates a side holding a single text concept.
func NewTextSide(text string, userID int64) *Side {
	return &Side{
		ID:       newID(),
		UserID:   userID,
		Concepts: []Concept{NewConcept(NewFact(text), userID)},
	}
}

// Text returns the text of the first concept.
func (side *Side) Text() string {
	if side == nil || len(side.Concepts) == 0 {
		return ""
	}
	return side.Concepts[0].Fact.Text
}

func (side *Side) String() string {
	return fmt.Sprintf("Side{ID: %s, Text: %q}", side.ID, side.Text())
}
