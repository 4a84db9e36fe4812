// Package images stores uploaded post images on the local filesystem and maps
// them to the public paths the API hands out ("images/<uuid>-<name>").
package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the first segment of every public image path.
const URLPrefix = "images"

var (
	ErrInvalidPath = errors.New("images: invalid image path")
	ErrNotFound    = errors.New("images: not found")
)

// AllowedTypes are the upload content types accepted as images.
var AllowedTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// IsAllowedType reports whether contentType is an accepted image type.
func IsAllowedType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	_, ok := AllowedTypes[ct]
	return ok
}

// File is a stored image.
type File struct {
	Path    string // public path, e.g. images/0b6f...-cat.png
	Size    int64
	ModTime time.Time
}

type Store struct {
	root string
}

// New returns a Store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("images: create root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root is the directory images are written to.
func (s *Store) Root() string { return s.root }

// Save writes r under a fresh "<uuid>-<name>" file name and returns its
// public path.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + "-" + sanitizeName(originalName)

	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}

	return path.Join(URLPrefix, name), nil
}

// Clear deletes the image at the given public path. Paths that leave the
// image directory are rejected with ErrInvalidPath.
func (s *Store) Clear(publicPath string) error {
	file, err := s.resolve(publicPath)
	if err != nil {
		return err
	}

	if err := os.Remove(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, publicPath)
		}
		return err
	}
	return nil
}

// List returns every stored image, oldest first.
func (s *Store) List() ([]File, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // removed while listing
		}
		files = append(files, File{
			Path:    path.Join(URLPrefix, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ModTime.Before(files[j].ModTime) })
	return files, nil
}

// resolve maps a public path ("images/x.png" or "/images/x.png") to a file
// directly inside the root.
func (s *Store) resolve(publicPath string) (string, error) {
	p := strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(publicPath)), "/")
	name, ok := strings.CutPrefix(p, URLPrefix+"/")
	if !ok || name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidPath
	}

	file := filepath.Join(s.root, name)
	if filepath.Dir(file) != s.root {
		return "", ErrInvalidPath
	}
	return file, nil
}

// sanitizeName keeps the base name of an upload with anything but letters,
// digits, dot, dash and underscore replaced by a dash.
func sanitizeName(name string) string {
	name = path.Base(filepath.ToSlash(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "image"
	}
	return out
}
