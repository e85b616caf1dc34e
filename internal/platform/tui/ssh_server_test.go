package tui

import (
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
	"github.com/vovakirdan/barigueira/internal/logging"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(SessionConfig{
		Store:   openStore(t),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1},
		GameID:  barigueira.ID,
		Game:    config.DefaultConfig(),
		User:    "tester",
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		next, c := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m, cmd = sm, c
	}
	return m, cmd
}

func TestSessionPlayAndQuit(t *testing.T) {
	m := newTestSession(t)
	if !strings.Contains(m.View(), "Barigueira Attack!") {
		t.Fatal("session should open on the launcher")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeGame || cmd == nil {
		t.Fatal("Play should start the game and its tick loop")
	}
	if !strings.Contains(m.View(), barigueira.TitleIntro) {
		t.Error("game should show its intro")
	}

	m, cmd = sessionUpdate(t, m, runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q in game should end the SSH session")
	}
}

func TestSessionGameExitReturnsToLauncher(t *testing.T) {
	m := newTestSession(t)
	now := epoch
	next := func() TickMsg {
		now = now.Add(16 * time.Millisecond)
		return TickMsg(now)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m,
		tea.KeyMsg{Type: tea.KeyEnter}, next(), // Intro -> Menu
		tea.KeyMsg{Type: tea.KeyDown}, next(),
		tea.KeyMsg{Type: tea.KeyDown}, next(),
		tea.KeyMsg{Type: tea.KeyEnter}, next(), // SAIR
	)

	if m.mode != modeLauncher || m.Err() != nil {
		t.Fatalf("game exit should return to the launcher, mode %d err %v", m.mode, m.Err())
	}

	// A stale tick from the finished game is ignored
	m, _ = sessionUpdate(t, m, next())
	if !strings.Contains(m.View(), "> Play") {
		t.Error("launcher should be shown again")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard should be rendered")
	}

	m, cmd = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 90, Height: 30}, runeKey('b'))
	if m.mode != modeLauncher || cmd != nil {
		t.Errorf("back should return to the launcher, mode %d", m.mode)
	}
	if m.cfg.Runtime.ScreenW != 90 {
		t.Errorf("session should track the terminal size, got %d", m.cfg.Runtime.ScreenW)
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("cannot reserve a port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return addr
}

func TestSSHServerServesUntilCancelled(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = freeAddr(t)
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = logging.Discard()

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.DialTimeout("tcp", cfg.Address, 200*time.Millisecond)
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("server never accepted connections: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v after cancel", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "pong"
	cfg.Logger = logging.Discard()
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer() should reject unknown games")
	}
}
