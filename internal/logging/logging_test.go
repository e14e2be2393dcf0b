package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("mounted", "session", "abc")

	out := buf.String()
	if !strings.Contains(out, Prefix) {
		t.Errorf("output %q missing prefix", out)
	}
	if !strings.Contains(out, "mounted") || !strings.Contains(out, "session=abc") {
		t.Errorf("output %q missing message or fields", out)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	testutil.AssertErrorContains(t, err, `invalid level "loud"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runner.log")

	for i := 0; i < 2; i++ {
		f, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile() error = %v", err)
		}
		if _, err := f.WriteString("line\n"); err != nil {
			t.Fatalf("write error = %v", err)
		}
		f.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	testutil.AssertEqual(t, "appended content", string(data), "line\nline\n")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.runner/x.log")
	if err != nil {
		t.Fatalf("ExpandHome() error = %v", err)
	}
	testutil.AssertEqual(t, "expanded", got, filepath.Join(home, ".runner", "x.log"))

	got, _ = ExpandHome("/tmp/x.log")
	testutil.AssertEqual(t, "absolute untouched", got, "/tmp/x.log")
}
