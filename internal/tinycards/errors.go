package tinycards

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRemoteRejected     = errors.New("request rejected by Tinycards")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrMissingCredentials = errors.New("identifier and password are required to log in")
	ErrEmptyDeckID        = errors.New("deck id is empty")
	ErrDeckNotFound       = errors.New("deck not found")
	ErrAmbiguousTitle     = errors.New("multiple decks have the same title")
)

// APIError is returned when the service responds with an error status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return ErrRemoteRejected
}

type AmbiguousTitleError struct {
	Title   string
	DeckIDs []string
}

func (e *AmbiguousTitleError) Error() string {
	return fmt.Sprintf("%s: %q is used by decks %s", ErrAmbiguousTitle, e.Title, strings.Join(e.DeckIDs, ", "))
}

func (e *AmbiguousTitleError) Unwrap() error {
	return ErrAmbiguousTitle
}
