package model

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// facts use the dashless form of the identifier
func newFactID() string {
	return strings.ReplaceAll(newID(), "-", "")
}
