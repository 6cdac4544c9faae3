package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notation/internal/editor"
	"github.com/aidanlsb/notation/internal/picker"
	"github.com/aidanlsb/notation/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit [note]",
	Short: "Edit a note in your editor",
	Long: `Opens an existing note in your editor and waits for it to exit.

Without a note path you are walked through the tree: pick a year, then a
month, then a day, then the note, by typing the number shown next to each.

The editor is determined by (in order):
  1. The --editor flag
  2. The 'editor' setting in ~/.config/notation/config.toml
  3. The $EDITOR environment variable

Examples:
  notation edit                              # Pick interactively
  notation edit notes/2024/06/01/14.30.md
  notation edit -e nano notes/2024/06/01/14.30.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}
		return editNote(ref)
	},
}

func editNote(ref string) error {
	st := getStore()

	editorCmd, err := editor.Resolve(editorFlag, getConfig())
	if err != nil {
		return handleError(err)
	}

	if ref == "" {
		ref, err = picker.New(st, stdin, promptOutput()).Pick()
		if err != nil {
			return handleError(err)
		}
	}

	filePath, err := st.Resolve(ref)
	if err != nil {
		return handleError(err)
	}
	relPath := st.Rel(filePath)

	if !isJSONOutput() {
		fmt.Printf("Opening %s\n", ui.FilePath(relPath))
	}
	if err := launchEditor(editorCmd, filePath); err != nil {
		return handleError(err)
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"file":   relPath,
			"editor": editorCmd,
		}, nil)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
