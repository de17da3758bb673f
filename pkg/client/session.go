// AngelaMos | 2026
// session.go

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrNoSession means no session file exists; the caller is anonymous.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired means a session file exists but its token is past
	// its expiry. The caller should log in again.
	ErrSessionExpired = errors.New("session expired")
)

// Session is the locally persisted login state: the bearer token plus the
// identity it was minted for. The server keeps no record of it; deleting
// the file is the entire logout.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      Identity  `json:"user"`
}

type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionStore persists one session to a file. Writes go through a rename
// so a crash mid-write never leaves a torn session behind.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath puts the session under the user config dir.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}

	return filepath.Join(dir, "smartstyle", "session.json"), nil
}

// Current returns the stored session, ErrNoSession when none exists, or
// ErrSessionExpired when the token is past its expiry.
func (s *SessionStore) Current() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Establish replaces any existing session atomically.
func (s *SessionStore) Establish(session *Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()           //nolint:errcheck // cleanup on write failure
		_ = os.Remove(tmp.Name()) //nolint:errcheck // cleanup on write failure
		return fmt.Errorf("write session: %w", err)
	}

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()           //nolint:errcheck // cleanup on chmod failure
		_ = os.Remove(tmp.Name()) //nolint:errcheck // cleanup on chmod failure
		return fmt.Errorf("chmod session: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name()) //nolint:errcheck // cleanup on close failure
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name()) //nolint:errcheck // cleanup on rename failure
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
