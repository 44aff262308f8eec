package tinycards

import (
	"context"

	"github.com/at-ishikawa/tinycards/internal/model"
)

//go:generate mockgen -source=interface.go -destination=../mocks/tinycards/mock_api.go -package=mock_tinycards

// API is the set of operations of the Tinycards REST API.
type API interface {
	Login(ctx context.Context, identifier, password string) (int64, error)
	Session() (Session, error)
	RestoreSession(session Session)

	GetUserInfo(ctx context.Context, userID int64) (*model.User, error)
	GetTrends(ctx context.Context, query TrendsQuery) ([]*model.Trendable, error)
	Search(ctx context.Context, query SearchQuery) ([]*model.Searchable, error)
	Subscribe(ctx context.Context, userID int64) (int64, error)
	Unsubscribe(ctx context.Context, userID int64) (int64, error)

	GetDecks(ctx context.Context) ([]*model.Deck, error)
	GetDeck(ctx context.Context, deckID string, includeCards bool) (*model.Deck, error)
	FindDeckByTitle(ctx context.Context, title string) (*model.Deck, error)
	CreateDeck(ctx context.Context, deck *model.Deck, opts ...DeckOption) (*model.Deck, error)
	UpdateDeck(ctx context.Context, deck *model.Deck, opts ...DeckOption) (*model.Deck, error)
	DeleteDeck(ctx context.Context, deckID string) (*model.Deck, error)

	GetFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error)
	AddFavorite(ctx context.Context, deckID string) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID string) (string, error)
}

var _ API = (*Client)(nil)
