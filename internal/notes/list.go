package notes

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Entry describes one note found on disk.
type Entry struct {
	Path    string    // store-relative, slash-separated
	Title   string    // first-line heading text, empty if none
	Created time.Time // zero when Path is not a derived note path
}

// List walks the notes tree and returns every Markdown file in lexical path
// order, which for derived paths is chronological. A missing tree yields an
// empty list.
func (s *Store) List() ([]Entry, error) {
	root := s.NotesDir()
	var entries []Entry

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), Ext) || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(s.rootDir(), p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		title, err := ReadTitle(p)
		if err != nil {
			return err
		}

		entry := Entry{Path: rel, Title: title}
		if t, ok := ParsePath(rel, time.Local); ok {
			entry.Created = t
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, newError(KindIO, "list", Dir, err)
	}
	return entries, nil
}

// ReadTitle returns the title of the note file at p, or "" when the note does
// not open with a level-1 heading.
func ReadTitle(p string) (string, error) {
	content, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return Title(content), nil
}

// Title extracts the text of a leading "# " heading from Markdown content.
func Title(content []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	first := doc.FirstChild()
	heading, ok := first.(*ast.Heading)
	if !ok || heading.Level != 1 {
		return ""
	}

	var b strings.Builder
	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
