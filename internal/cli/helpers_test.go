package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aidanlsb/notation/internal/config"
	"github.com/aidanlsb/notation/internal/notes"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// fixedNow is 2024-06-01 14:30 local time.
var fixedNow = time.Date(2024, time.June, 1, 14, 30, 12, 0, time.Local)

type editorCall struct {
	command  string
	filePath string
}

type testEnv struct {
	store   *notes.Store
	editors []editorCall
	// editErr is returned from the stubbed editor launch.
	editErr error
}

// setupTestEnv points the package globals at a fresh root and stubs out the
// clock, stdin, and editor launch. Everything is restored on cleanup.
func setupTestEnv(t *testing.T, c *config.Config) *testEnv {
	t.Helper()

	prevStore, prevCfg, prevJSON := store, cfg, jsonOutput
	prevNow, prevStdin, prevLaunch := now, stdin, launchEditor
	prevEditorFlag, prevConfigPath := editorFlag, resolvedConfigPath
	t.Cleanup(func() {
		store, cfg, jsonOutput = prevStore, prevCfg, prevJSON
		now, stdin, launchEditor = prevNow, prevStdin, prevLaunch
		editorFlag, resolvedConfigPath = prevEditorFlag, prevConfigPath
	})

	if c == nil {
		c = &config.Config{}
	}
	t.Setenv("EDITOR", "")

	env := &testEnv{store: notes.NewStore(t.TempDir(), nil)}
	store = env.store
	cfg = c
	jsonOutput = false
	editorFlag = ""
	resolvedConfigPath = ""
	now = func() time.Time { return fixedNow }
	stdin = strings.NewReader("")
	launchEditor = func(command, filePath string) error {
		env.editors = append(env.editors, editorCall{command: command, filePath: filePath})
		return env.editErr
	}
	return env
}

func (e *testEnv) writeNote(t *testing.T, rel, content string) {
	t.Helper()
	f, err := e.store.Create(rel)
	if err != nil {
		t.Fatalf("Create(%s): %v", rel, err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", rel, err)
	}
}

func (e *testEnv) readNote(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(e.store.Abs(rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func (e *testEnv) exists(t *testing.T, rel string) bool {
	t.Helper()
	_, err := os.Lstat(e.store.Abs(rel))
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", rel, err)
	}
	return false
}

type jsonResponse struct {
	OK    bool                   `json:"ok"`
	Data  map[string]interface{} `json:"data"`
	Error *struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	} `json:"error"`
	Warnings []Warning `json:"warnings"`
	Meta     *Meta     `json:"meta"`
}

func decodeResponse(t *testing.T, out string) jsonResponse {
	t.Helper()
	var resp jsonResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}
