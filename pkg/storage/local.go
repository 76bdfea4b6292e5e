// Package storage keeps uploaded media on local disk under
// category-scoped paths: village/, members/, gallery/YYYY/MM/.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	VillageDir = "village"
	MemberDir  = "members"
	GalleryDir = "gallery"
)

type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the media root directory (for static file serving).
func (s *Store) Root() string { return s.root }

// GalleryPath returns the year/month-scoped directory for gallery
// uploads, e.g. "gallery/2026/08".
func GalleryPath(t time.Time) string {
	return filepath.Join(GalleryDir, t.Format("2006"), t.Format("01"))
}

// Save writes data under dir using the upload's own filename, sanitized.
// On a name collision a short unique suffix is inserted so an existing
// file is never silently overwritten. Returns the path relative to the
// media root, using forward slashes.
func (s *Store) Save(dir, filename string, data []byte) (string, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		name = "upload"
	}
	abs := filepath.Join(s.root, dir)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	target := filepath.Join(abs, name)
	if _, err := os.Stat(target); err == nil {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		name = fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)
		target = filepath.Join(abs, name)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return filepath.ToSlash(filepath.Join(dir, name)), nil
}

// Remove deletes the file at relPath. A missing file is not an error.
func (s *Store) Remove(relPath string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	base := filepath.Base(filepath.FromSlash(filename))
	return unsafeChars.ReplaceAllString(base, "_")
}
