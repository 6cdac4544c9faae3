// Package picker resolves a note interactively by walking the notes tree one
// level at a time: year, then month, then day, then the note file itself.
//
// Each level is listed, numbered from zero, and the user types an index.
// The directory is listed again after the answer is read, so an entry added
// or removed in between shifts the selection. This race is accepted for a
// single-user local tool.
package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aidanlsb/notation/internal/notes"
	"github.com/aidanlsb/notation/internal/ui"
)

// Levels are the directory layers walked before the final note selection.
var Levels = []string{"year", "month", "day"}

// Picker prompts on Out and reads answers from In.
type Picker struct {
	store *notes.Store
	in    *bufio.Reader
	out   io.Writer
	log   logrus.FieldLogger
}

// New returns a Picker over the notes tree of store.
func New(store *notes.Store, in io.Reader, out io.Writer) *Picker {
	return &Picker{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
		log:   store.Log,
	}
}

// Pick walks every level and returns the store-relative path of the chosen
// note, e.g. "notes/2024/06/01/14.30.md".
func (p *Picker) Pick() (string, error) {
	current := notes.Dir
	for _, level := range Levels {
		name, err := p.Select(current, level, true)
		if err != nil {
			return "", err
		}
		current = path.Join(current, name)
	}

	name, err := p.Select(current, "note", false)
	if err != nil {
		return "", err
	}
	return path.Join(current, name), nil
}

// Select lists dir, prompts for an index, and returns the name of the chosen
// entry. With dirs set only subdirectories are offered, otherwise only
// files. Symlinks count as what they point to. Hidden entries and dangling
// links are never offered.
func (p *Picker) Select(dir, label string, dirs bool) (string, error) {
	entries, err := p.list(dir, dirs)
	if err != nil {
		return "", err
	}

	if len(entries) == 0 {
		fmt.Fprintln(p.out, ui.Hint(fmt.Sprintf("(no %s entries in %s)", label, dir)))
		return "", &notes.Error{
			Kind: notes.KindInvalidSelection,
			Op:   "select " + label,
			Path: dir,
			Msg:  "nothing to select",
		}
	}

	for i, name := range entries {
		fmt.Fprintf(p.out, "(%d)  %s\n", i, name)
	}
	fmt.Fprintf(p.out, "%s ", ui.Bold.Render(label+":"))

	index, err := p.readIndex()
	if err != nil {
		return "", &notes.Error{Kind: notes.KindInvalidSelection, Op: "select " + label, Path: dir, Err: err}
	}

	// List again; the tree may have changed while waiting for input.
	entries, err = p.list(dir, dirs)
	if err != nil {
		return "", err
	}
	if index >= len(entries) {
		return "", &notes.Error{
			Kind: notes.KindInvalidSelection,
			Op:   "select " + label,
			Path: dir,
			Msg:  fmt.Sprintf("index %d out of range (%d entries)", index, len(entries)),
		}
	}

	name := entries[index]
	if p.log != nil {
		p.log.WithFields(logrus.Fields{"level": label, "index": index, "entry": name}).Debug("picker selection")
	}
	return name, nil
}

func (p *Picker) readIndex() (int, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("no selection read: %w", err)
	}

	answer := strings.TrimSpace(line)
	n, err := strconv.ParseUint(answer, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid index", answer)
	}
	return int(n), nil
}

// list returns entry names of dir in the order os.ReadDir yields them,
// which is sorted by name.
func (p *Picker) list(dir string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(p.store.Abs(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notes.Error{Kind: notes.KindNotFound, Op: "list", Path: dir}
		}
		return nil, &notes.Error{Kind: notes.KindIO, Op: "list", Path: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		isDir, ok := p.entryIsDir(dir, e)
		if !ok || isDir != dirs {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// entryIsDir reports whether e is a directory, following symlinks. ok is
// false for dangling links.
func (p *Picker) entryIsDir(dir string, e fs.DirEntry) (isDir, ok bool) {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir(), true
	}
	info, err := os.Stat(p.store.Abs(path.Join(dir, e.Name())))
	if err != nil {
		return false, false
	}
	return info.IsDir(), true
}
