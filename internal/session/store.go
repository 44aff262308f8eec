// Package session keeps the session of the logged-in user between runs of the CLI.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

var ErrNoSession = errors.New("no saved session, run the login command first")

type file struct {
	Token   string    `yaml:"token"`
	UserID  int64     `yaml:"user_id"`
	SavedAt time.Time `yaml:"saved_at"`
}

// Store saves a session as a YAML file.
type Store struct {
	path string
	now  func() time.Time
}

func DefaultPath() string {
	return filepath.Join(os.TempDir(), "tinycards", "session.yml")
}

// NewStore creates a store of the file at path, or at DefaultPath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{
		path: path,
		now:  time.Now,
	}
}

func (store *Store) Path() string {
	return store.path
}

func (store *Store) Save(session tinycards.Session) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0700); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	data, err := yaml.Marshal(file{
		Token:   session.Token,
		UserID:  session.UserID,
		SavedAt: store.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", store.path, err)
	}
	return nil
}

func (store *Store) Load() (tinycards.Session, error) {
	data, err := os.ReadFile(store.path)
	if errors.Is(err, os.ErrNotExist) {
		return tinycards.Session{}, ErrNoSession
	}
	if err != nil {
		return tinycards.Session{}, fmt.Errorf("os.ReadFile(%s) > %w", store.path, err)
	}

	var saved file
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return tinycards.Session{}, fmt.Errorf("yaml.Unmarshal(%s) > %w", store.path, err)
	}
	if saved.UserID == 0 {
		return tinycards.Session{}, ErrNoSession
	}
	return tinycards.Session{
		Token:  saved.Token,
		UserID: saved.UserID,
	}, nil
}

// Clear removes the saved session. It is not an error when no session is saved.
func (store *Store) Clear() error {
	if err := os.Remove(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove(%s) > %w", store.path, err)
	}
	return nil
}
