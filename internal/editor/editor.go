// Package editor hands a note off to the user's text editor.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/aidanlsb/notation/internal/config"
	"github.com/aidanlsb/notation/internal/notes"
	"github.com/aidanlsb/notation/internal/shellquote"
)

// Resolve picks the editor command: an explicit override first, then the
// config file, then $EDITOR. It fails with notes.ErrMissingEditor when none
// is set.
func Resolve(override string, cfg *config.Config) (string, error) {
	if editor := strings.TrimSpace(override); editor != "" {
		return editor, nil
	}
	if editor := cfg.GetEditor(); editor != "" {
		return editor, nil
	}
	return "", &notes.Error{
		Kind: notes.KindMissingEditor,
		Msg:  "no editor configured (use --editor, set 'editor' in config.toml, or export $EDITOR)",
	}
}

// Launcher runs an editor in the foreground with the terminal attached.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher returns a Launcher wired to the process's standard streams.
func NewLauncher() *Launcher {
	return &Launcher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Open runs editor on filePath and blocks until it exits.
//
// An editor containing spaces (e.g. "code --wait") is run through sh -c so
// its own arguments are honored.
func (l *Launcher) Open(editor, filePath string) error {
	cmd := command(editor, filePath)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		return &notes.Error{
			Kind: notes.KindIO,
			Op:   "edit",
			Path: filePath,
			Msg:  fmt.Sprintf("editor %q failed", editor),
			Err:  err,
		}
	}
	return nil
}

func command(editor, filePath string) *exec.Cmd {
	if strings.ContainsAny(editor, " \t") {
		return exec.Command("sh", "-c", shellquote.Command(editor, filePath))
	}
	return exec.Command(editor, filePath)
}
