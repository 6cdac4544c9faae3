package notes

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"heading and body", "# Groceries\nBuy bread\n", "Groceries"},
		{"inline markup", "# Call *Freya* about `deploy`\n", "Call Freya about deploy"},
		{"empty file", "", ""},
		{"body only", "Buy bread\n", ""},
		{"second level heading", "## Not a title\n", ""},
		{"heading not first", "intro\n\n# Later\n", ""},
		{"empty heading", "# \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title([]byte(tt.content)); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreList(t *testing.T) {
	t.Run("missing tree is empty", func(t *testing.T) {
		s := NewStore(t.TempDir(), nil)
		entries, err := s.List()
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %v", entries)
		}
	})

	t.Run("chronological with titles", func(t *testing.T) {
		root := t.TempDir()
		files := map[string]string{
			"notes/2024/06/01/14.30.md":   "# Groceries\nBuy bread\n",
			"notes/2023/12/31/23.59.md":   "",
			"notes/2024/06/01/loose.md":   "# Loose\n",
			"notes/2024/06/01/.hidden.md": "# Hidden\n",
			"notes/2024/06/01/image.png":  "x",
		}
		for rel, content := range files {
			full := filepath.Join(root, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}

		entries, err := NewStore(root, nil).List()
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d: %v", len(entries), entries)
		}

		wantPaths := []string{
			"notes/2023/12/31/23.59.md",
			"notes/2024/06/01/14.30.md",
			"notes/2024/06/01/loose.md",
		}
		for i, want := range wantPaths {
			if entries[i].Path != want {
				t.Errorf("entries[%d].Path = %q, want %q", i, entries[i].Path, want)
			}
		}

		if entries[1].Title != "Groceries" {
			t.Errorf("title = %q, want Groceries", entries[1].Title)
		}
		want := time.Date(2024, time.June, 1, 14, 30, 0, 0, time.Local)
		if !entries[1].Created.Equal(want) {
			t.Errorf("created = %v, want %v", entries[1].Created, want)
		}
		if !entries[2].Created.IsZero() {
			t.Errorf("non-derived path should have zero Created, got %v", entries[2].Created)
		}
	})
}
