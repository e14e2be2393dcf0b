package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "missing"
	cfg.Logger = log.New(io.Discard)

	_, err := NewSSHServer(cfg)
	if err == nil {
		t.Fatal("expected an error for an unknown game")
	}
	if !strings.Contains(err.Error(), "available:") || !strings.Contains(err.Error(), fakeGameID) {
		t.Errorf("error should list registered games, got %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.GameID = fakeGameID
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("expected the scores database to be opened")
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key should be generated: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
