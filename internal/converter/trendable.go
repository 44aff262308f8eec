package converter

import (
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/tinycards/internal/model"
)

// DecodeTrendable decodes a trending deck, deck group or user.
// Every data field is required whatever the type is, except fullname.
func DecodeTrendable(data []byte) (*model.Trendable, error) {
	obj, err := newObject("trendable", data)
	if err != nil {
		return nil, err
	}

	var trendable model.Trendable
	var trendableType string
	var rawData json.RawMessage
	obj.required("data", &rawData)
	obj.required("id", &trendable.ID)
	obj.required("type", &trendableType)
	if obj.err == nil && isNull(rawData) {
		obj.fail(&MissingFieldError{Entity: "trendable", Field: "data"})
	}
	if obj.err != nil {
		return nil, obj.err
	}

	if trendable.Type, err = model.ParseTrendableType(trendableType); err != nil {
		return nil, fmt.Errorf("trendable %s > %w", trendable.ID, err)
	}
	if trendable.Data, err = decodeTrendableData(rawData); err != nil {
		return nil, fmt.Errorf("trendable %s > %w", trendable.ID, err)
	}
	return &trendable, nil
}

func decodeTrendableData(data []byte) (model.TrendableData, error) {
	obj, err := newObject("trendable data", data)
	if err != nil {
		return model.TrendableData{}, err
	}

	var d model.TrendableData
	obj.required("blacklistedQuestionTypes", &d.BlacklistedQuestionTypes)
	obj.required("blacklistedSideIndices", &d.BlacklistedSideIndices)
	obj.required("cardCount", &d.CardCount)
	obj.required("compactId", &d.CompactID)
	obj.required("coverImageUrl", &d.CoverImageURL)
	obj.required("createdAt", &d.CreatedAt)
	obj.required("deckGroups", &d.DeckGroups)
	obj.required("description", &d.Description)
	obj.required("enabled", &d.Enabled)
	obj.required("favoriteCount", &d.FavoriteCount)
	obj.required("fromLanguage", &d.FromLanguage)
	obj.optional("fullname", &d.Fullname)
	obj.required("gradingModes", &d.GradingModes)
	obj.required("hashes", &d.Hashes)
	obj.required("id", &d.ID)
	obj.required("imageUrl", &d.ImageURL)
	obj.required("name", &d.Name)
	obj.required("picture", &d.Picture)
	obj.required("private", &d.Private)
	obj.required("shareable", &d.Shareable)
	obj.required("slug", &d.Slug)
	obj.required("tagIds", &d.TagIDs)
	obj.required("ttsLanguages", &d.TTSLanguages)
	obj.required("uiLanguage", &d.UILanguage)
	obj.required("updatedAt", &d.UpdatedAt)
	obj.required("userId", &d.UserID)
	obj.required("username", &d.Username)
	if obj.err != nil {
		return model.TrendableData{}, obj.err
	}
	return d, nil
}

func EncodeTrendable(trendable *model.Trendable) map[string]any {
	d := trendable.Data
	return map[string]any{
		"id":   trendable.ID,
		"type": string(trendable.Type),
		"data": map[string]any{
			"blacklistedQuestionTypes": d.BlacklistedQuestionTypes,
			"blacklistedSideIndices":   d.BlacklistedSideIndices,
			"cardCount":                d.CardCount,
			"compactId":                d.CompactID,
			"coverImageUrl":            d.CoverImageURL,
			"createdAt":                d.CreatedAt,
			"deckGroups":               d.DeckGroups,
			"description":              d.Description,
			"enabled":                  d.Enabled,
			"favoriteCount":            d.FavoriteCount,
			"fromLanguage":             d.FromLanguage,
			"fullname":                 d.Fullname,
			"gradingModes":             d.GradingModes,
			"hashes":                   d.Hashes,
			"id":                       d.ID,
			"imageUrl":                 d.ImageURL,
			"name":                     d.Name,
			"picture":                  d.Picture,
			"private":                  d.Private,
			"shareable":                d.Shareable,
			"slug":                     d.Slug,
			"tagIds":                   d.TagIDs,
			"ttsLanguages":             d.TTSLanguages,
			"uiLanguage":               d.UILanguage,
			"updatedAt":                d.UpdatedAt,
			"userId":                   d.UserID,
			"username":                 d.Username,
		},
	}
}

// DecodeSearchable decodes a search result. Its type is kept as sent by the service.
func DecodeSearchable(data []byte) (*model.Searchable, error) {
	obj, err := newObject("searchable", data)
	if err != nil {
		return nil, err
	}

	var searchable model.Searchable
	var searchableType string
	var rawData json.RawMessage
	obj.required("data", &rawData)
	obj.required("id", &searchable.ID)
	obj.required("type", &searchableType)
	if obj.err == nil && isNull(rawData) {
		obj.fail(&MissingFieldError{Entity: "searchable", Field: "data"})
	}
	if obj.err != nil {
		return nil, obj.err
	}
	searchable.Type = model.TrendableType(searchableType)

	dataObj, err := newObject("searchable data", rawData)
	if err != nil {
		return nil, err
	}
	d := &searchable.Data
	dataObj.required("id", &d.ID)
	dataObj.required("name", &d.Name)
	dataObj.required("description", &d.Description)
	var averageFreshness float64
	if dataObj.optional("averageFreshness", &averageFreshness) {
		d.AverageFreshness = &averageFreshness
	}
	if dataObj.err != nil {
		return nil, fmt.Errorf("searchable %s > %w", searchable.ID, dataObj.err)
	}
	return &searchable, nil
}
