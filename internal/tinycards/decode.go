package tinycards

import (
	"encoding/json"
	"fmt"
)

func decodeJSON(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("json.Unmarshal(%s) > %w", string(body), err)
	}
	return nil
}

// decodeList decodes the list of an envelope such as {"decks": [...]}.
func decodeList[T any](body []byte, key string, decode func([]byte) (T, error)) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := decodeJSON(body, &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("unexpected response without %q: %s", key, string(body))
	}

	var items []json.RawMessage
	if err := decodeJSON(raw, &items); err != nil {
		return nil, err
	}
	result := make([]T, 0, len(items))
	for i, item := range items {
		value, err := decode(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d] > %w", key, i, err)
		}
		result = append(result, value)
	}
	return result, nil
}
