package model

// Favorite is a deck saved by a user.
type Favorite struct {
	ID   string
	Deck *Deck
}
