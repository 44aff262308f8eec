package tinycards

import (
	"context"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"github.com/at-ishikawa/tinycards/internal/converter"
	"github.com/at-ishikawa/tinycards/internal/model"
)

// GetFavorites returns the favorites of a user. userID 0 means the logged-in user.
func (client *Client) GetFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error) {
	if userID == 0 {
		var err error
		if userID, err = client.requireUserID(); err != nil {
			return nil, err
		}
	}

	body, err := client.get(ctx, "GetFavorites", userPath(userID, "favorites"), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(body, "favorites", converter.DecodeFavorite)
}

// AddFavorite adds a deck to the favorites of the logged-in user.
func (client *Client) AddFavorite(ctx context.Context, deckID string) (*model.Favorite, error) {
	userID, err := client.requireUserID()
	if err != nil {
		return nil, err
	}
	if deckID == "" {
		return nil, ErrEmptyDeckID
	}

	body, err := client.send(ctx, http.MethodPost, userPath(userID, "favorites"), func(request *resty.Request) {
		request.SetBody(map[string]string{"deckId": deckID})
	})
	if err != nil {
		return nil, fmt.Errorf("AddFavorite > %w", err)
	}
	return converter.DecodeFavorite(body)
}

// RemoveFavorite removes a favorite of the logged-in user and returns its id.
func (client *Client) RemoveFavorite(ctx context.Context, favoriteID string) (string, error) {
	userID, err := client.requireUserID()
	if err != nil {
		return "", err
	}

	body, err := client.send(ctx, http.MethodDelete, userPath(userID, "favorites", favoriteID), nil)
	if err != nil {
		return "", fmt.Errorf("RemoveFavorite > %w", err)
	}
	var response struct {
		RemovedFavoriteID *string `json:"removedFavoriteId"`
	}
	if err := decodeJSON(body, &response); err != nil {
		return "", err
	}
	if response.RemovedFavoriteID == nil {
		return "", fmt.Errorf("unexpected response without %q: %s", "removedFavoriteId", string(body))
	}
	return *response.RemovedFavoriteID, nil
}
