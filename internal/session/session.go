package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Credentials is what the backend hands out at login plus the business
// selection made afterwards. It is the only state persisted on the client.
type Credentials struct {
	Token      string    `json:"token"`
	Role       string    `json:"role"`
	BusinessID string    `json:"business_id,omitempty"`
	SavedAt    time.Time `json:"saved_at"`
}

// Store keeps credentials in a JSON file under the user config dir.
type Store struct {
	path string
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve user config dir: %w", err)
		}
		path = filepath.Join(dir, "gastro", "credentials.json")
	}
	return &Store{path: path}, nil
}

func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return &creds, nil
}

func (s *Store) Save(creds *Credentials) error {
	creds.SavedAt = time.Now()
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// Clear removes stored credentials. Clearing an already-empty store is a no-op,
// so repeated 401 handling stays idempotent.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// EnsureRole gates page logic: it reports whether a token is present and the
// stored role matches. On a mismatch the store is cleared and the caller must
// abort further initialization.
func (s *Store) EnsureRole(requiredRole string) (bool, error) {
	creds, err := s.Load()
	if err != nil {
		return false, err
	}
	if creds == nil || creds.Token == "" || creds.Role != requiredRole {
		if err := s.Clear(); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
