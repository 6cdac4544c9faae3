// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/notation/internal/config"
	"github.com/aidanlsb/notation/internal/editor"
	"github.com/aidanlsb/notation/internal/logging"
	"github.com/aidanlsb/notation/internal/notes"
	"github.com/aidanlsb/notation/internal/ui"
)

var (
	// Global flags
	editorFlag string // Editor override
	configPath string
	rootFlag   string // Directory containing notes/
	logLevel   string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	store              *notes.Store
	logger             logrus.FieldLogger

	// Seams for tests
	now              = time.Now
	stdin            = io.Reader(os.Stdin)
	stdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
	launchEditor     = func(command, filePath string) error {
		l := editor.NewLauncher()
		if isJSONOutput() {
			// Keep stdout clean for the JSON envelope.
			l.Stdout = os.Stderr
		}
		return l.Open(command, filePath)
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "notation",
	Short: "Take and edit notes in the terminal",
	Long: `notation keeps short Markdown notes in a tree bucketed by creation time:

  notes/<YYYY>/<MM>/<DD>/<HH>.<mm>.md

Notes are plain files; the filesystem is the only source of truth.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		return setup()
	},
}

// Execute runs the CLI. Errors are reported before returning; callers only
// need to pick an exit code with ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		if isJSONOutput() {
			outputErrorFromErr(codeFor(err), err, suggestionFor(err))
		} else {
			fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
			if s := suggestionFor(err); s != "" {
				fmt.Fprintln(os.Stderr, ui.Hint(s))
			}
		}
	}
	return err
}

// ExitCode maps an error from Execute to a process exit status:
// 0 on success, 1 for input the user can correct, 2 for environment failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ne *notes.Error
	if !errors.As(err, &ne) {
		// Usage and flag errors from cobra.
		return 1
	}
	if ne.Kind.UserError() {
		return 1
	}
	return 2
}

func init() {
	registerGlobalFlags(rootCmd.PersistentFlags())
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&editorFlag, "editor", "e", "", "Editor to use (defaults to config, then $EDITOR)")
	fs.StringVar(&configPath, "config", "", "Path to config file")
	fs.StringVar(&rootFlag, "root", "", "Directory containing notes/ (defaults to config, then the working directory)")
	fs.StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (env "+logging.EnvLevel+")")
	fs.BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
}

// setup loads config and builds the logger and note store.
func setup() error {
	log, err := logging.New(logLevel, os.Stderr)
	if err != nil {
		return err
	}
	logger = log

	loaded, path, err := loadGlobalConfigWithPath()
	if err != nil {
		return &notes.Error{Kind: notes.KindIO, Op: "load config", Err: err}
	}
	cfg = loaded
	resolvedConfigPath = path
	ui.ConfigureTheme(cfg.UI.Accent)

	root := cfg.GetRoot()
	if rootFlag != "" {
		root = rootFlag
	}
	store = notes.NewStore(root, logger)

	logger.WithFields(logrus.Fields{"config": resolvedConfigPath, "root": root}).Debug("configured")
	return nil
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if configPath != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getStore returns the note store for the resolved root.
func getStore() *notes.Store {
	return store
}

// promptOutput is where interactive prompts go: stdout on a terminal,
// stderr when stdout is redirected or carries JSON.
func promptOutput() io.Writer {
	if isJSONOutput() || !stdoutIsTerminal() {
		return os.Stderr
	}
	return os.Stdout
}
