package tinycards

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/at-ishikawa/tinycards/internal/converter"
	"github.com/at-ishikawa/tinycards/internal/model"
)

const (
	defaultLimit        = 10
	defaultFromLanguage = "en"
)

var defaultTrendableTypes = []model.TrendableType{
	model.TrendableTypeDeck,
	model.TrendableTypeDeckGroup,
}

// GetUserInfo returns a user. userID 0 means the logged-in user.
func (client *Client) GetUserInfo(ctx context.Context, userID int64) (*model.User, error) {
	if userID == 0 {
		var err error
		if userID, err = client.requireUserID(); err != nil {
			return nil, err
		}
	}

	body, err := client.get(ctx, "GetUserInfo", userPath(userID), nil)
	if err != nil {
		return nil, err
	}
	return converter.DecodeUser(body)
}

type TrendsQuery struct {
	Types        []model.TrendableType
	Limit        int
	Page         int
	FromLanguage string
}

func (client *Client) GetTrends(ctx context.Context, query TrendsQuery) ([]*model.Trendable, error) {
	if query.Limit <= 0 {
		query.Limit = defaultLimit
	}
	if query.FromLanguage == "" {
		query.FromLanguage = defaultFromLanguage
	}

	body, err := client.get(ctx, "GetTrends", "/trendables", map[string]string{
		"types":        joinTypes(query.Types),
		"limit":        strconv.Itoa(query.Limit),
		"page":         strconv.Itoa(query.Page),
		"fromLanguage": query.FromLanguage,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(body, "trendables", converter.DecodeTrendable)
}

type SearchQuery struct {
	Query string
	// FuzzySearch is sent as useFuzzySearch. NewSearchQuery enables it.
	FuzzySearch bool
	Types       []model.TrendableType
	Limit       int
	Page        int
}

func NewSearchQuery(query string) SearchQuery {
	return SearchQuery{
		Query:       query,
		FuzzySearch: true,
		Limit:       defaultLimit,
	}
}

func (client *Client) Search(ctx context.Context, query SearchQuery) ([]*model.Searchable, error) {
	if query.Limit <= 0 {
		query.Limit = defaultLimit
	}

	body, err := client.get(ctx, "Search", "/searchables", map[string]string{
		"query":          query.Query,
		"useFuzzySearch": strconv.FormatBool(query.FuzzySearch),
		"types":          joinTypes(query.Types),
		"limit":          strconv.Itoa(query.Limit),
		"page":           strconv.Itoa(query.Page),
	})
	if err != nil {
		return nil, err
	}
	return decodeList(body, "searchables", converter.DecodeSearchable)
}

// Subscribe subscribes the logged-in user to a user and returns the id of that user.
func (client *Client) Subscribe(ctx context.Context, userID int64) (int64, error) {
	return client.updateSubscription(ctx, http.MethodPost, userID, "addedSubscription")
}

// Unsubscribe unsubscribes the logged-in user from a user and returns the id of that user.
func (client *Client) Unsubscribe(ctx context.Context, userID int64) (int64, error) {
	return client.updateSubscription(ctx, http.MethodDelete, userID, "removedSubscription")
}

func (client *Client) updateSubscription(ctx context.Context, method string, userID int64, key string) (int64, error) {
	if _, err := client.requireUserID(); err != nil {
		return 0, err
	}

	body, err := client.send(ctx, method, userPath(userID, "subscriptions"), nil)
	if err != nil {
		return 0, err
	}
	var response map[string]json.RawMessage
	if err := decodeJSON(body, &response); err != nil {
		return 0, err
	}
	raw, ok := response[key]
	if !ok {
		return 0, fmt.Errorf("unexpected response without %q: %s", key, string(body))
	}
	var subscribedUserID int64
	if err := decodeJSON(raw, &subscribedUserID); err != nil {
		return 0, err
	}
	return subscribedUserID, nil
}

func joinTypes(types []model.TrendableType) string {
	if len(types) == 0 {
		types = defaultTrendableTypes
	}
	values := make([]string, 0, len(types))
	for _, t := range types {
		values = append(values, string(t))
	}
	return strings.Join(values, ",")
}
