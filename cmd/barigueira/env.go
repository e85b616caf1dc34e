package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/logging"
	"github.com/vovakirdan/barigueira/internal/platform/tui"
	"github.com/vovakirdan/barigueira/internal/storage"
)

// env holds what every command needs: config, logger and the optional store.
type env struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store
	runID  string

	logCloser io.Closer
}

// newEnv loads the configuration, builds the logger and opens the scores
// database. A missing database only disables recording. When the terminal
// belongs to a full-screen program, logs go to --log-file or nowhere.
func newEnv(cmd *cobra.Command, logToStderr bool) (*env, error) {
	opts := logging.Options{Level: flagLogLevel, File: flagLogFile, Prefix: "barigueira"}
	if flagLogFile == "" {
		opts.Writer = io.Discard
		if logToStderr {
			opts.Writer = cmd.ErrOrStderr()
		}
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		closer.Close()
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger, logCloser: closer, runID: storage.NewRunID()}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		e.store = store
	}
	return e, nil
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.logCloser != nil {
		e.logCloser.Close()
	}
}

func (e *env) runtime() core.RuntimeConfig {
	return terminalRuntime()
}

// terminalRuntime returns the runtime config for the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func (e *env) options() tui.Options {
	return tui.Options{
		Store:  e.store,
		Logger: e.logger,
		RunID:  e.runID,
		User:   os.Getenv("USER"),
	}
}
