package model

type FactType string

const (
	FactTypeText  FactType = "TEXT"
	FactTypeImage FactType = "IMAGE"
)

// Fact is the atomic content of a concept: a text, an image or a speech sound.
type Fact struct {
	ID       string
	Text     string
	Type     FactType
	ImageURL string
	TTSURL   string
}

// NewFact creates a text fact with a generated identifier.
func NewFact(text string) Fact {
	return Fact{
		ID:   newFactID(),
		Text: text,
		Type: FactTypeText,
	}
}
