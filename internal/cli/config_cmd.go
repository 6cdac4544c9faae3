package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/notation/internal/config"
	"github.com/aidanlsb/notation/internal/notes"
	"github.com/aidanlsb/notation/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change global configuration",
	Long: `Shows or changes ~/.config/notation/config.toml.

Keys:
  editor      Editor command, e.g. "nvim" or "code --wait"
  root        Directory containing notes/
  ui.accent   Accent color: ANSI code (0-255), hex (#RRGGBB), or "none"`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"path": resolvedConfigPath}, nil)
			return nil
		}
		fmt.Println(resolvedConfigPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		// Empty when the built-in accent is used or coloring is off.
		accent, _ := ui.AccentColor()
		effective := map[string]interface{}{
			"path":      resolvedConfigPath,
			"editor":    c.GetEditor(),
			"root":      getStore().Root,
			"ui.accent": accent,
		}
		if isJSONOutput() {
			outputSuccess(effective, nil)
			return nil
		}

		fmt.Println(ui.Hint("# " + resolvedConfigPath))
		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(c); err != nil {
			return handleError(&notes.Error{Kind: notes.KindIO, Op: "show config", Err: err})
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		updated := *getConfig()
		if err := updated.Set(key, value); err != nil {
			return handleErrorMsg(ErrInvalidInput, err.Error(), "Run 'notation config --help' for valid keys")
		}
		if err := config.SaveTo(resolvedConfigPath, &updated); err != nil {
			return handleError(&notes.Error{Kind: notes.KindIO, Op: "save config", Path: resolvedConfigPath, Err: err})
		}
		cfg = &updated

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":  resolvedConfigPath,
				"key":   key,
				"value": value,
			}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Set %s in %s", key, ui.FilePath(resolvedConfigPath)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
