package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreatePepper reads the pepper stored at path, generating and writing a
// fresh random one (0600) when the file does not exist yet.
func LoadOrCreatePepper(path string) (string, error) {
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		return strings.TrimSpace(string(b)), nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(pepper), 0600); err != nil {
		return "", err
	}
	return pepper, nil
}
