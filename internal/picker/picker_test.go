package picker

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/notation/internal/notes"
)

func buildTree(t *testing.T, files ...string) *notes.Store {
	t.Helper()
	store := notes.NewStore(t.TempDir(), nil)
	for _, rel := range files {
		full := store.Abs(rel)
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("# "+rel+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

// changingReader runs change once, just before the first answer is read,
// so the tree differs from what was printed.
type changingReader struct {
	r      io.Reader
	change func()
}

func (c *changingReader) Read(p []byte) (int, error) {
	if c.change != nil {
		c.change()
		c.change = nil
	}
	return c.r.Read(p)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
		// change edits the tree after the listing is printed.
		change func(t *testing.T, store *notes.Store)
	}{
		{name: "second entry", input: "1\n", want: "2024"},
		{name: "first entry", input: "0\n", want: "2023"},
		{name: "surrounding whitespace", input: "  1 \n", want: "2024"},
		{name: "no trailing newline", input: "1", want: "2024"},
		{name: "out of range", input: "5\n", wantErr: true},
		{name: "one past the end", input: "2\n", wantErr: true},
		{name: "not a number", input: "abc\n", wantErr: true},
		{name: "negative", input: "-1\n", wantErr: true},
		{name: "empty answer", input: "\n", wantErr: true},
		{name: "no input", input: "", wantErr: true},
		{
			name:  "entry added before answer",
			input: "1\n",
			want:  "2023",
			change: func(t *testing.T, store *notes.Store) {
				if err := os.Mkdir(store.Abs("notes/2022"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name:    "entry removed before answer",
			input:   "1\n",
			wantErr: true,
			change: func(t *testing.T, store *notes.Store) {
				if err := os.Remove(store.Abs("notes/2024")); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := buildTree(t, "notes/2023/", "notes/2024/")
			var out bytes.Buffer
			in := &changingReader{r: strings.NewReader(tt.input)}
			if tt.change != nil {
				in.change = func() { tt.change(t, store) }
			}
			p := New(store, in, &out)

			got, err := p.Select(notes.Dir, "year", true)
			if tt.wantErr {
				if !errors.Is(err, notes.ErrInvalidSelection) {
					t.Fatalf("expected ErrInvalidSelection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectPrintsIndexedEntries(t *testing.T) {
	store := buildTree(t, "notes/2023/", "notes/2024/", "notes/.git/", "notes/README.md")
	var out bytes.Buffer
	p := New(store, strings.NewReader("0\n"), &out)

	if _, err := p.Select(notes.Dir, "year", true); err != nil {
		t.Fatalf("Select: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "(0)  2023\n(1)  2024\n") {
		t.Errorf("unexpected listing:\n%s", got)
	}
	if strings.Contains(got, ".git") || strings.Contains(got, "README") {
		t.Errorf("listing should only offer visible directories:\n%s", got)
	}
	if !strings.Contains(got, "year:") {
		t.Errorf("missing prompt:\n%s", got)
	}
}

func TestSelectEmptyDirectory(t *testing.T) {
	store := buildTree(t, "notes/2024/06/01/")
	var out bytes.Buffer
	p := New(store, strings.NewReader("0\n"), &out)

	_, err := p.Select("notes/2024/06/01", "note", false)
	if !errors.Is(err, notes.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestSelectMissingTree(t *testing.T) {
	store := notes.NewStore(t.TempDir(), nil)
	p := New(store, strings.NewReader("0\n"), &bytes.Buffer{})

	_, err := p.Select(notes.Dir, "year", true)
	if !errors.Is(err, notes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPick(t *testing.T) {
	store := buildTree(t,
		"notes/2023/12/31/23.59.md",
		"notes/2024/03/05/09.07.md",
		"notes/2024/06/01/08.00.md",
		"notes/2024/06/01/14.30.md",
	)
	var out bytes.Buffer
	// year 2024, month 06, day 01, note 14.30.md
	p := New(store, strings.NewReader("1\n1\n0\n1\n"), &out)

	got, err := p.Pick()
	if err != nil {
		t.Fatalf("Pick: %v\noutput:\n%s", err, out.String())
	}
	if got != "notes/2024/06/01/14.30.md" {
		t.Errorf("Pick() = %q", got)
	}
	for _, prompt := range []string{"year:", "month:", "day:", "note:"} {
		if !strings.Contains(out.String(), prompt) {
			t.Errorf("missing %q prompt in output:\n%s", prompt, out.String())
		}
	}
}

func TestPickStopsAtFirstBadLevel(t *testing.T) {
	store := buildTree(t, "notes/2024/06/01/14.30.md")
	var out bytes.Buffer
	p := New(store, strings.NewReader("0\n7\n0\n0\n"), &out)

	_, err := p.Pick()
	if !errors.Is(err, notes.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
	if strings.Contains(out.String(), "day:") {
		t.Errorf("picker continued past an invalid month:\n%s", out.String())
	}
}

func TestPickDayWithOnlyDirectories(t *testing.T) {
	store := buildTree(t, "notes/2024/06/01/attachments/")
	p := New(store, strings.NewReader("0\n0\n0\n0\n"), &bytes.Buffer{})

	_, err := p.Pick()
	if !errors.Is(err, notes.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestSelectFollowsSymlinkedDirectories(t *testing.T) {
	store := buildTree(t, "notes/2024/06/01/14.30.md")
	archive := t.TempDir()
	if err := os.MkdirAll(filepath.Join(archive, "12", "31"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(archive, "12", "31", "23.59.md"), []byte("# Old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(archive, store.Abs("notes/2023")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(store.Abs("notes/2024/06/01/14.30.md"), store.Abs("notes/2024/06/01/14.31.md")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(archive, "missing"), store.Abs("notes/2025")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	p := New(store, strings.NewReader("0\n"), &out)
	got, err := p.Select(notes.Dir, "year", true)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != "2023" {
		t.Errorf("Select() = %q, want the linked 2023 directory", got)
	}
	if strings.Contains(out.String(), "2025") {
		t.Errorf("dangling link should not be offered:\n%s", out.String())
	}

	p = New(store, strings.NewReader("0\n0\n0\n0\n"), &bytes.Buffer{})
	picked, err := p.Pick()
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if picked != "notes/2023/12/31/23.59.md" {
		t.Errorf("Pick() = %q", picked)
	}

	p = New(store, strings.NewReader("1\n"), &out)
	name, err := p.Select("notes/2024/06/01", "note", false)
	if err != nil {
		t.Fatalf("Select note: %v", err)
	}
	if name != "14.31.md" {
		t.Errorf("linked note file not offered, got %q", name)
	}
}
