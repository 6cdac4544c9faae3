package notes

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Store creates and removes note files under Root.
// There is no locking: concurrent writers to the same minute race, and the
// loser observes ErrAlreadyExists.
type Store struct {
	// Root is the directory containing Dir. Empty means the working directory.
	Root string

	// Log receives debug output. Nil disables logging.
	Log logrus.FieldLogger
}

// NewStore returns a Store rooted at root.
func NewStore(root string, log logrus.FieldLogger) *Store {
	return &Store{Root: root, Log: log}
}

// Abs maps a store-relative note path onto the filesystem. Absolute paths are
// returned unchanged.
func (s *Store) Abs(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Root, p)
}

// Rel is the inverse of Abs. Paths outside Root are returned as given.
func (s *Store) Rel(p string) string {
	if !filepath.IsAbs(p) {
		return filepath.ToSlash(filepath.Clean(p))
	}
	root, err := filepath.Abs(s.rootDir())
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return filepath.ToSlash(rel)
}

func (s *Store) rootDir() string {
	if s.Root == "" {
		return "."
	}
	return s.Root
}

// NotesDir is the absolute-or-relative location of the notes tree.
func (s *Store) NotesDir() string {
	return filepath.Join(s.rootDir(), Dir)
}

// Create makes every missing ancestor directory of p, then creates p as an
// empty file and returns it open for writing. If anything already exists at
// p, Create fails with ErrAlreadyExists and leaves it untouched.
func (s *Store) Create(p string) (*os.File, error) {
	full := s.Abs(p)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, newError(KindIO, "create", p, err)
	}

	if _, err := os.Lstat(full); err == nil {
		return nil, &Error{
			Kind: KindAlreadyExists,
			Op:   "create",
			Path: p,
			Msg:  "note exists, perhaps try editing the existing note?",
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, newError(KindIO, "create", p, err)
	}

	// O_EXCL closes the window between the existence check and creation.
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, newError(KindAlreadyExists, "create", p, err)
		}
		return nil, newError(KindIO, "create", p, err)
	}

	s.debug("created note", p)
	return f, nil
}

// WriteTitleAndBody writes the optional title and body of a new note.
//
// A title becomes a single "# {title}" line, and a body becomes the line
// after it. The body is only written together with a title: a body passed
// with a nil title is dropped. Existing notes on disk depend on this shape,
// so the coupling is kept.
func WriteTitleAndBody(w io.Writer, title, body *string) error {
	if title == nil {
		return nil
	}
	if _, err := io.WriteString(w, "# "+*title+"\n"); err != nil {
		return newError(KindIO, "write", "", err)
	}
	if body != nil {
		if _, err := io.WriteString(w, *body+"\n"); err != nil {
			return newError(KindIO, "write", "", err)
		}
	}
	return nil
}

// Delete removes the note file at p. Parent directories are left in place
// even when they become empty.
func (s *Store) Delete(p string) error {
	full := s.Abs(p)

	info, err := os.Lstat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newError(KindNotFound, "delete", p, nil)
		}
		return newError(KindIO, "delete", p, err)
	}
	if info.IsDir() {
		return &Error{Kind: KindIO, Op: "delete", Path: p, Msg: "is a directory, not a note"}
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newError(KindNotFound, "delete", p, nil)
		}
		return newError(KindIO, "delete", p, err)
	}

	s.debug("deleted note", p)
	return nil
}

// Resolve checks that a note exists at p and returns its filesystem path.
func (s *Store) Resolve(p string) (string, error) {
	full := s.Abs(p)
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(KindNotFound, "open", p, nil)
		}
		return "", newError(KindIO, "open", p, err)
	}
	if info.IsDir() {
		return "", &Error{Kind: KindIO, Op: "open", Path: p, Msg: "is a directory, not a note"}
	}
	return full, nil
}

func (s *Store) debug(msg, p string) {
	if s.Log == nil {
		return
	}
	s.Log.WithField("path", p).Debug(msg)
}
