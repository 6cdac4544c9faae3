package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notation/internal/buildinfo"
	"github.com/aidanlsb/notation/internal/ui"
)

// buildDetails is what `notation version` reports.
type buildDetails struct {
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Built    string `json:"built,omitempty"`
	Dirty    bool   `json:"dirty"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show notation version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := collectBuildDetails()
		if isJSONOutput() {
			outputSuccess(d, nil)
			return nil
		}

		var extra []string
		if d.Commit != "" {
			extra = append(extra, shortCommit(d.Commit))
		}
		if d.Built != "" {
			extra = append(extra, "built "+d.Built)
		}
		if d.Dirty {
			extra = append(extra, "dirty")
		}

		line := ui.Bold.Render("notation") + " " + d.Version
		if len(extra) > 0 {
			line += " " + ui.Hint("("+strings.Join(extra, ", ")+")")
		}
		fmt.Println(line)
		fmt.Println(ui.Hint(d.Go + " " + d.Platform))
		return nil
	},
}

// collectBuildDetails prefers values injected with -ldflags and fills the
// rest from the embedded module and VCS build info.
func collectBuildDetails() buildDetails {
	d := buildDetails{
		Version:  buildinfo.Version,
		Commit:   buildinfo.Commit,
		Built:    buildinfo.Date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}

		if d.Version == "" {
			d.Version = bi.Main.Version
		}
		if d.Commit == "" {
			d.Commit = settings["vcs.revision"]
		}
		if d.Built == "" {
			d.Built = settings["vcs.time"]
		}
		d.Dirty = settings["vcs.modified"] == "true"
		if bi.GoVersion != "" {
			d.Go = bi.GoVersion
		}
		if goos, goarch := settings["GOOS"], settings["GOARCH"]; goos != "" && goarch != "" {
			d.Platform = goos + "/" + goarch
		}
	}

	if d.Version == "" || d.Version == "(devel)" {
		d.Version = "devel"
	}
	return d
}

func shortCommit(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
