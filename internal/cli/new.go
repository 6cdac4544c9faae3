package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notation/internal/editor"
	"github.com/aidanlsb/notation/internal/notes"
	"github.com/aidanlsb/notation/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new [title] [body]",
	Short: "Create a new note",
	Long: `Creates a note for the current minute at notes/<YYYY>/<MM>/<DD>/<HH>.<mm>.md.

The title is written as a "# title" heading and the body as the line after it.
If neither is given, the empty note is opened in your editor.

Only one note can exist per minute; a second 'new' in the same minute fails
without touching the first.

Examples:
  notation new                              # Opens a fresh note in $EDITOR
  notation new "Groceries"                  # Heading only
  notation new "Groceries" "Buy bread"      # Heading and body
  notation new -e "code --wait"             # Use a specific editor`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var title, body *string
		if len(args) > 0 {
			title = &args[0]
		}
		if len(args) > 1 {
			body = &args[1]
		}
		return createNote(title, body)
	},
}

func createNote(title, body *string) error {
	st := getStore()

	// An untitled note is handed straight to the editor, so make sure there
	// is one before leaving an empty file behind.
	var editorCmd string
	if title == nil && body == nil {
		resolved, err := editor.Resolve(editorFlag, getConfig())
		if err != nil {
			return handleError(err)
		}
		editorCmd = resolved
	}

	relPath := notes.DerivePath(now())
	f, err := st.Create(relPath)
	if err != nil {
		return handleError(err)
	}

	if err := notes.WriteTitleAndBody(f, title, body); err != nil {
		_ = f.Close()
		return handleError(err)
	}
	if err := f.Close(); err != nil {
		return handleError(&notes.Error{Kind: notes.KindIO, Op: "write", Path: relPath, Err: err})
	}

	opened := false
	if editorCmd != "" {
		if !isJSONOutput() {
			fmt.Println(ui.Successf("Created %s", ui.FilePath(relPath)))
		}
		if err := launchEditor(editorCmd, st.Abs(relPath)); err != nil {
			return handleError(err)
		}
		opened = true
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"file":   relPath,
			"opened": opened,
			"editor": editorCmd,
		}, nil)
		return nil
	}

	if !opened {
		fmt.Println(ui.Successf("Created %s", ui.FilePath(relPath)))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
}
