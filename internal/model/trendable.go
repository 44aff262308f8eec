package model

import "fmt"

type TrendableType string

const (
	TrendableTypeDeck      TrendableType = "DECK"
	TrendableTypeDeckGroup TrendableType = "DECK_GROUP"
	TrendableTypeUser      TrendableType = "USER"
)

var AllTrendableTypes = []TrendableType{
	TrendableTypeDeck,
	TrendableTypeDeckGroup,
	TrendableTypeUser,
}

// ParseTrendableType returns the type named by value.
func ParseTrendableType(value string) (TrendableType, error) {
	for _, t := range AllTrendableTypes {
		if value == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid trendable type: %s", value)
}

// Trendable is a trending deck, deck group or user.
type Trendable struct {
	ID   string
	Type TrendableType
	Data TrendableData
}

// TrendableData holds the fields of every kind of trendable.
// Fields which do not apply to the type of the trendable are left empty by the service.
type TrendableData struct {
	ID          string
	CompactID   string
	Slug        string
	Name        string
	Description string

	BlacklistedQuestionTypes []string
	BlacklistedSideIndices   []int
	GradingModes             []string
	TTSLanguages             []string

	CardCount     int
	FavoriteCount int
	DeckGroups    []string
	TagIDs        []string
	Hashes        map[string]string

	CoverImageURL string
	ImageURL      string
	Picture       string

	Enabled   bool
	Private   bool
	Shareable bool

	FromLanguage string
	UILanguage   string

	// CreatedAt and UpdatedAt are epoch timestamps as sent by the service.
	CreatedAt float64
	UpdatedAt float64

	UserID   int64
	Username string
	Fullname string
}
