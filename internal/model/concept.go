package model

import "time"

type Concept struct {
	ID        string
	Fact      Fact
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewConcept wraps a fact with authorship metadata.
// Both timestamps are set to the current time.
func NewConcept(fact Fact, userID int64) Concept {
	now := time.Now()
	return Concept{
		ID:        newID(),
		Fact:      fact,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
