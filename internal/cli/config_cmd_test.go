package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/notation/internal/config"
	"github.com/aidanlsb/notation/internal/ui"
)

func TestConfigSetPersists(t *testing.T) {
	setupTestEnv(t, &config.Config{Root: "~/notes"})
	resolvedConfigPath = filepath.Join(t.TempDir(), "notation", "config.toml")

	_ = captureStdout(t, func() {
		if err := configSetCmd.RunE(configSetCmd, []string{"editor", "code --wait"}); err != nil {
			t.Fatalf("configSetCmd.RunE: %v", err)
		}
	})

	loaded, err := config.LoadFrom(resolvedConfigPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Editor != "code --wait" {
		t.Errorf("Editor = %q", loaded.Editor)
	}
	if loaded.Root != "~/notes" {
		t.Errorf("existing keys should be kept, Root = %q", loaded.Root)
	}
	if getConfig().Editor != "code --wait" {
		t.Errorf("in-memory config not updated")
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	setupTestEnv(t, nil)
	resolvedConfigPath = filepath.Join(t.TempDir(), "config.toml")

	err := configSetCmd.RunE(configSetCmd, []string{"colour", "red"})
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if codeFor(err) != ErrInvalidInput {
		t.Errorf("code = %q, want %q", codeFor(err), ErrInvalidInput)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
}

func TestConfigShowJSON(t *testing.T) {
	env := setupTestEnv(t, &config.Config{Editor: "hx", UI: config.UIConfig{Accent: "#ABC"}})
	resolvedConfigPath = "/tmp/notation.toml"
	jsonOutput = true
	ui.ConfigureTheme(getConfig().UI.Accent)
	t.Cleanup(func() { ui.ConfigureTheme("") })

	out := captureStdout(t, func() {
		if err := configShowCmd.RunE(configShowCmd, nil); err != nil {
			t.Fatalf("configShowCmd.RunE: %v", err)
		}
	})

	resp := decodeResponse(t, out)
	if resp.Data["editor"] != "hx" || resp.Data["root"] != env.store.Root {
		t.Errorf("data = %v", resp.Data)
	}
	if resp.Data["ui.accent"] != "#aabbcc" {
		t.Errorf("ui.accent = %v, want the normalized #aabbcc", resp.Data["ui.accent"])
	}
}

func TestConfigPath(t *testing.T) {
	setupTestEnv(t, nil)
	resolvedConfigPath = "/tmp/notation.toml"

	out := captureStdout(t, func() {
		if err := configPathCmd.RunE(configPathCmd, nil); err != nil {
			t.Fatalf("configPathCmd.RunE: %v", err)
		}
	})
	if strings.TrimSpace(out) != "/tmp/notation.toml" {
		t.Errorf("out = %q", out)
	}
}
