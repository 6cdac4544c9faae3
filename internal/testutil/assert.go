package testutil

import (
	"strings"
)

// AssertFileExists fails the test if the file does not exist.
func (n *TestNotes) AssertFileExists(relPath string) {
	n.t.Helper()
	if !n.FileExists(relPath) {
		n.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (n *TestNotes) AssertFileNotExists(relPath string) {
	n.t.Helper()
	if n.FileExists(relPath) {
		n.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContent fails the test unless the file holds exactly want.
func (n *TestNotes) AssertFileContent(relPath, want string) {
	n.t.Helper()
	if got := n.ReadFile(relPath); got != want {
		n.t.Errorf("content of %s = %q, want %q", relPath, got, want)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (n *TestNotes) AssertFileContains(relPath, substr string) {
	n.t.Helper()
	content := n.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		n.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertNoteCount fails the test unless notes/ holds exactly want files.
func (n *TestNotes) AssertNoteCount(want int) {
	n.t.Helper()
	if got := n.NoteFiles(); len(got) != want {
		n.t.Errorf("expected %d note files, got %d: %v", want, len(got), got)
	}
}
