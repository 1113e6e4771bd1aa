package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileStore keeps the session on disk: one file for the opaque bearer token
// and one for the serialized user record. The default backend for a
// single-user workstation.
type FileStore struct {
	dir string
	log zerolog.Logger
}

// NewFileStore creates the session directory (0700) if needed.
func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: session directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("store: create session dir: %w", err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (s *FileStore) SetToken(token string) error {
	return s.writeAtomic(tokenFile, []byte(token))
}

// Token returns the persisted bearer token, or absent. Never fails: an
// unreadable or empty file is reported as absent.
func (s *FileStore) Token() (string, bool) {
	b, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) SetUser(user *domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("store: encode user: %w", err)
	}
	return s.writeAtomic(userFile, b)
}

// User returns the persisted user record, or absent. A value that is not
// valid JSON or does not decode into a user-shaped record is treated as
// absent and erased so the next read starts clean.
func (s *FileStore) User() (*domain.User, bool) {
	path := filepath.Join(s.dir, userFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(b, &user); err != nil || !user.Shaped() {
		s.log.Warn().Str("path", path).Msg("removing corrupted session user entry")
		_ = os.Remove(path)
		return nil, false
	}
	return &user, true
}

// Clear removes both entries. Best-effort: a failed removal only logs.
func (s *FileStore) Clear() {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("entry", name).Msg("failed to clear session entry")
		}
	}
}

// writeAtomic writes via a temp file and rename so a crash mid-write never
// leaves a half-written entry behind.
func (s *FileStore) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}
