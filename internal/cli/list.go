package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notation/internal/dates"
	"github.com/aidanlsb/notation/internal/notes"
	"github.com/aidanlsb/notation/internal/ui"
)

var (
	listOn    string
	listSince string
)

type listedNote struct {
	File    string `json:"file"`
	Title   string `json:"title,omitempty"`
	Created string `json:"created,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes oldest first",
	Long: `Lists every note under notes/ with its title, oldest first.

The title is the note's leading "# " heading. Nothing is indexed; the tree
is read fresh on every call.

Filter by creation day with --on or --since. Days are YYYY-MM-DD, "today",
or "yesterday". Files whose path is not a timestamp never match a filter.

Examples:
  notation list
  notation list --on today
  notation list --since 2024-06-01 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := listWindow()
		if err != nil {
			return handleErrorMsg(ErrInvalidInput, err.Error(), "Use YYYY-MM-DD, today, or yesterday")
		}

		entries, err := getStore().List()
		if err != nil {
			return handleError(err)
		}
		entries = filterEntries(entries, window)

		if isJSONOutput() {
			items := make([]listedNote, 0, len(entries))
			for _, e := range entries {
				item := listedNote{File: e.Path, Title: e.Title}
				if !e.Created.IsZero() {
					item.Created = e.Created.Format("2006-01-02T15:04")
				}
				items = append(items, item)
			}
			outputSuccess(map[string]interface{}{"notes": items}, &Meta{Count: len(items)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Println(ui.Hint("No notes yet. Create one with 'notation new'."))
			return nil
		}

		pathWidth := 0
		for _, e := range entries {
			if len(e.Path) > pathWidth {
				pathWidth = len(e.Path)
			}
		}
		titleWidth := ui.TermWidth() - pathWidth - 2

		for _, e := range entries {
			padded := fmt.Sprintf("%-*s", pathWidth, e.Path)
			if e.Title == "" {
				fmt.Println(ui.FilePath(padded))
				continue
			}
			fmt.Printf("%s  %s\n", ui.FilePath(padded), ui.Truncate(e.Title, titleWidth))
		}
		fmt.Println(ui.Hint(ui.Plural(len(entries), "note")))
		return nil
	},
}

func listWindow() (dates.Window, error) {
	if listOn != "" && listSince != "" {
		return dates.Window{}, fmt.Errorf("--on and --since cannot be combined")
	}
	switch {
	case listOn != "":
		day, err := dates.ParseDay(listOn, now())
		if err != nil {
			return dates.Window{}, err
		}
		return dates.On(day), nil
	case listSince != "":
		day, err := dates.ParseDay(listSince, now())
		if err != nil {
			return dates.Window{}, err
		}
		return dates.Window{From: day}, nil
	}
	return dates.Window{}, nil
}

func filterEntries(entries []notes.Entry, window dates.Window) []notes.Entry {
	if window.IsZero() {
		return entries
	}
	kept := entries[:0]
	for _, e := range entries {
		if !e.Created.IsZero() && window.Contains(e.Created) {
			kept = append(kept, e)
		}
	}
	return kept
}

func init() {
	listCmd.Flags().StringVar(&listOn, "on", "", "Only notes created on this day")
	listCmd.Flags().StringVar(&listSince, "since", "", "Only notes created on or after this day")
	rootCmd.AddCommand(listCmd)
}
