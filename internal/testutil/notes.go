// Package testutil provides helpers for building note trees in tests and
// driving the notation binary against them.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNotes is a temporary notation root for tests.
type TestNotes struct {
	t    *testing.T
	Root string

	files  map[string]string
	dirs   []string
	config string
}

// NewTestNotes starts a builder for a fresh root under t.TempDir().
func NewTestNotes(t *testing.T) *TestNotes {
	t.Helper()
	return &TestNotes{
		t:     t,
		Root:  t.TempDir(),
		files: make(map[string]string),
	}
}

// WithNote adds a file at relPath (relative to the root, e.g.
// "notes/2024/06/01/14.30.md").
func (n *TestNotes) WithNote(relPath, content string) *TestNotes {
	n.files[relPath] = content
	return n
}

// WithDir adds an empty directory.
func (n *TestNotes) WithDir(relPath string) *TestNotes {
	n.dirs = append(n.dirs, relPath)
	return n
}

// WithConfig sets the contents of the config file passed to RunCLI.
func (n *TestNotes) WithConfig(toml string) *TestNotes {
	n.config = toml
	return n
}

// Build writes everything to disk.
func (n *TestNotes) Build() *TestNotes {
	n.t.Helper()

	for _, dir := range n.dirs {
		if err := os.MkdirAll(filepath.Join(n.Root, dir), 0o755); err != nil {
			n.t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	for path, content := range n.files {
		n.writeFile(path, content)
	}
	n.writeFile(n.configRel(), n.config)
	return n
}

// ConfigPath is the config file handed to the binary via --config.
func (n *TestNotes) ConfigPath() string {
	return filepath.Join(n.Root, n.configRel())
}

func (n *TestNotes) configRel() string {
	return filepath.Join(".notation", "config.toml")
}

func (n *TestNotes) writeFile(relPath, content string) {
	n.t.Helper()
	fullPath := filepath.Join(n.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		n.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		n.t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

// ReadFile reads a file relative to the root.
func (n *TestNotes) ReadFile(relPath string) string {
	n.t.Helper()
	content, err := os.ReadFile(filepath.Join(n.Root, relPath))
	if err != nil {
		n.t.Fatalf("failed to read %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists reports whether relPath exists under the root.
func (n *TestNotes) FileExists(relPath string) bool {
	_, err := os.Stat(filepath.Join(n.Root, relPath))
	return err == nil
}

// NoteFiles lists every regular file under notes/, slash-separated and
// relative to the root.
func (n *TestNotes) NoteFiles() []string {
	n.t.Helper()
	var out []string
	base := filepath.Join(n.Root, "notes")
	err := filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, _ := filepath.Rel(n.Root, path)
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		n.t.Fatalf("failed to walk notes: %v", err)
	}
	return out
}
