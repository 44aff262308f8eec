package model

import (
	"fmt"
	"time"
)

// Card is a pair of a front side and a back side.
type Card struct {
	ID     string
	Front  *Side
	Back   *Side
	UserID int64

	// CreatedAt is sent to the service in milliseconds, with a second precision.
	CreatedAt time.Time
}

// NewCard creates a card from two existing sides.
func NewCard(front, back *Side, userID int64) (*Card, error) {
	if front == nil {
		return nil, fmt.Errorf("front: %w", ErrNilSide)
	}
	if back == nil {
		return nil, fmt.Errorf("back: %w", ErrNilSide)
	}
	return &Card{
		ID:        newID(),
		Front:     front,
		Back:      back,
		UserID:    userID,
		CreatedAt: time.Now().Truncate(time.Second),
	}, nil
}

// NewCardFromText creates a card whose sides hold a single text each.
func NewCardFromText(front, back string, userID int64) *Card {
	return &Card{
		ID:        newID(),
		Front:     NewTextSide(front, userID),
		Back:      NewTextSide(back, userID),
		UserID:    userID,
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

// CreationTimestamp returns the creation time in milliseconds since the epoch.
func (card *Card) CreationTimestamp() int64 {
	return card.CreatedAt.Unix() * 1000
}

func (card *Card) String() string {
	return fmt.Sprintf("Card{ID: %s, Front: %q, Back: %q}", card.ID, card.Front.Text(), card.Back.Text())
}
