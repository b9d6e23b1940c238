package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"backoffice/internal/domain/models"
)

// Exactly two persisted artifacts: the opaque token and the serialized
// identity. They are written and cleared together, never independently.
const (
	tokenFile = "token"
	adminFile = "admin.json"
)

type fileState struct {
	dir string
}

func newFileState(dir string) *fileState {
	return &fileState{dir: dir}
}

func (f *fileState) load() (token string, admin models.AdminIdentity, ok bool) {
	rawToken, err := os.ReadFile(filepath.Join(f.dir, tokenFile))
	if err != nil {
		return "", admin, false
	}
	token = strings.TrimSpace(string(rawToken))
	if token == "" {
		return "", admin, false
	}

	rawAdmin, err := os.ReadFile(filepath.Join(f.dir, adminFile))
	if err != nil {
		// Half-written state counts as absent.
		f.clear()
		return "", admin, false
	}
	if err := json.Unmarshal(rawAdmin, &admin); err != nil {
		f.clear()
		return "", models.AdminIdentity{}, false
	}
	return token, admin, true
}

func (f *fileState) save(token string, admin models.AdminIdentity) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return err
	}
	rawAdmin, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(f.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, adminFile), rawAdmin, 0o600)
}

func (f *fileState) clear() {
	os.Remove(filepath.Join(f.dir, tokenFile))
	os.Remove(filepath.Join(f.dir, adminFile))
}
