package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notation/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [note]",
	Short: "Delete a note",
	Long: `Deletes the note file at the given path. Empty year/month/day
directories are left in place.

A path is required: unlike 'edit', delete never falls back to the
interactive picker, and running it without a path deletes nothing.

Examples:
  notation delete notes/2024/06/01/14.30.md
  notation delete notes/2024/06/01/14.30.md --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccessWithWarnings(map[string]interface{}{"deleted": false}, []Warning{{
					Code:    WarnNothingDeleted,
					Message: "no note path given",
				}}, nil)
				return nil
			}
			fmt.Println(ui.Warning("No note given; nothing deleted."))
			fmt.Println(ui.Hint("Usage: notation delete <note>"))
			return nil
		}
		return deleteNote(args[0])
	},
}

func deleteNote(ref string) error {
	st := getStore()
	if err := st.Delete(ref); err != nil {
		return handleError(err)
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"deleted": true,
			"file":    ref,
		}, nil)
		return nil
	}
	fmt.Println(ui.Successf("Deleted %s", ui.FilePath(ref)))
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
