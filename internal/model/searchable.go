package model

// Searchable is a search result.
type Searchable struct {
	ID   string
	Type TrendableType
	Data SearchableData
}

type SearchableData struct {
	ID          string
	Name        string
	Description string

	// AverageFreshness is nil when the service did not compute it.
	AverageFreshness *float64
}
