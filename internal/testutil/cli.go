package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	builtPath string
	buildErr  error
)

// CLIResult is one run of the binary: its exit status plus the decoded
// --json envelope.
type CLIResult struct {
	OK       bool
	Data     map[string]interface{}
	Error    *CLIError
	Warnings []CLIWarning
	Meta     *CLIMeta
	RawJSON  string
	Stderr   string
	ExitCode int
}

// CLIError mirrors the envelope's error object.
type CLIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CLIWarning mirrors one entry of the envelope's warnings list.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CLIMeta mirrors the envelope's meta object.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// BuildCLI compiles ./cmd/notation into a temp dir the first time it is
// called and returns the binary path.
func BuildCLI(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		builtPath, buildErr = buildBinary()
	})
	if buildErr != nil {
		t.Fatalf("failed to build notation: %v", buildErr)
	}
	return builtPath
}

func buildBinary() (string, error) {
	moduleRoot, err := findModuleRoot()
	if err != nil {
		return "", err
	}
	outDir, err := os.MkdirTemp("", "notation-bin-*")
	if err != nil {
		return "", err
	}
	name := "notation"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	out := filepath.Join(outDir, name)

	cmd := exec.Command("go", "build", "-o", out, "./cmd/notation")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build: %w\n%s", err, output)
	}
	return out, nil
}

// findModuleRoot walks up from the working directory to the go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

// RunCLI runs the binary against the root with --json. $EDITOR is cleared
// so only the config file or an explicit --editor picks the editor.
func (n *TestNotes) RunCLI(args ...string) *CLIResult {
	n.t.Helper()
	return n.RunCLIWithStdin("", args...)
}

// RunCLIWithStdin is RunCLI with stdin fed from the given string, for
// driving the picker.
func (n *TestNotes) RunCLIWithStdin(stdin string, args ...string) *CLIResult {
	n.t.Helper()

	argv := append([]string{"--root", n.Root, "--config", n.ConfigPath(), "--json"}, args...)
	cmd := exec.Command(BuildCLI(n.t), argv...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(), "EDITOR=")

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &CLIResult{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			n.t.Fatalf("running notation: %v", err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.RawJSON = stdout.String()
	result.Stderr = stderr.String()

	var envelope struct {
		OK       bool                   `json:"ok"`
		Data     map[string]interface{} `json:"data"`
		Error    *CLIError              `json:"error"`
		Warnings []CLIWarning           `json:"warnings"`
		Meta     *CLIMeta               `json:"meta"`
	}
	if err := json.Unmarshal([]byte(result.RawJSON), &envelope); err != nil {
		result.Error = &CLIError{Code: "PARSE_ERROR", Message: err.Error()}
		return result
	}
	result.OK = envelope.OK
	result.Data = envelope.Data
	result.Error = envelope.Error
	result.Warnings = envelope.Warnings
	result.Meta = envelope.Meta
	return result
}

func (r *CLIResult) describe() string {
	return fmt.Sprintf("stdout: %s\nstderr: %s", r.RawJSON, r.Stderr)
}

// MustSucceed fails the test unless the envelope reports ok.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		t.Fatalf("expected success, got error %+v\n%s", r.Error, r.describe())
	}
	return r
}

// MustFail fails the test unless the envelope carries the given error code.
func (r *CLIResult) MustFail(t *testing.T, code string) *CLIResult {
	t.Helper()
	if r.OK || r.Error == nil {
		t.Fatalf("expected failure with %s\n%s", code, r.describe())
	}
	if r.Error.Code != code {
		t.Fatalf("expected error code %s, got %s: %s\n%s", code, r.Error.Code, r.Error.Message, r.describe())
	}
	return r
}

// MustExit fails the test unless the process exited with code.
func (r *CLIResult) MustExit(t *testing.T, code int) *CLIResult {
	t.Helper()
	if r.ExitCode != code {
		t.Fatalf("expected exit code %d, got %d\n%s", code, r.ExitCode, r.describe())
	}
	return r
}

// DataList returns Data[key] as a list, or nil.
func (r *CLIResult) DataList(key string) []interface{} {
	list, _ := r.Data[key].([]interface{})
	return list
}

// DataString returns Data[key] as a string, or "".
func (r *CLIResult) DataString(key string) string {
	s, _ := r.Data[key].(string)
	return s
}

// DataBool returns Data[key] as a bool, or false.
func (r *CLIResult) DataBool(key string) bool {
	b, _ := r.Data[key].(bool)
	return b
}
