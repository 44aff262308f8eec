package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/tinycards/internal/model"
)

// TrendableTypesFlag is a comma separated list of trendable types.
type TrendableTypesFlag []model.TrendableType

// Set implements pflag.Value.
func (f *TrendableTypesFlag) Set(v string) error {
	var types []model.TrendableType
	for _, value := range strings.Split(v, ",") {
		t, err := model.ParseTrendableType(strings.ToUpper(strings.TrimSpace(value)))
		if err != nil {
			return fmt.Errorf("%w, valid values are %v", err, model.AllTrendableTypes)
		}
		types = append(types, t)
	}
	*f = types
	return nil
}

// String implements pflag.Value.
func (f *TrendableTypesFlag) String() string {
	if f == nil {
		return ""
	}
	values := make([]string, 0, len(*f))
	for _, t := range *f {
		values = append(values, string(t))
	}
	return strings.Join(values, ",")
}

// Type implements pflag.Value.
func (f *TrendableTypesFlag) Type() string {
	return "TrendableTypesFlag"
}

var (
	_ pflag.Value = (*TrendableTypesFlag)(nil)
)

func parseUserID(value string) (int64, error) {
	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("invalid user id %q", value)
	}
	return userID, nil
}
