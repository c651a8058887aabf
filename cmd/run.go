package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/teamlowkey/studybuddy/internal/app"
	"github.com/teamlowkey/studybuddy/internal/config"
	"github.com/teamlowkey/studybuddy/internal/llm"
	"github.com/teamlowkey/studybuddy/internal/logging"
	"github.com/teamlowkey/studybuddy/internal/notes"
	"github.com/teamlowkey/studybuddy/internal/recommend"
	"github.com/teamlowkey/studybuddy/internal/roster"
	"github.com/teamlowkey/studybuddy/internal/store"
)

// env is what every command needs: settings, a logger, the store and a
// fetcher wired to the configured provider.
type env struct {
	cfg     *config.Config
	logger  zerolog.Logger
	store   *store.Store
	fetcher *recommend.Fetcher

	logFile io.Closer
}

func (e *env) Close() {
	e.store.Close()
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// openEnv loads configuration and opens the store. The TUI owns the
// terminal, so with toFile set logs go to studybuddy.log in the data
// directory instead of stderr.
func openEnv(cmd *cobra.Command, toFile bool) (*env, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	var w io.Writer = os.Stderr
	if toFile {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		f, err := logging.OpenFile(filepath.Join(dir, "studybuddy.log"))
		if err != nil {
			return nil, err
		}
		w, e.logFile = f, f
	}
	fail := func(err error) (*env, error) {
		if e.logFile != nil {
			e.logFile.Close()
		}
		return nil, err
	}

	e.logger, err = logging.New(cfg.Log, w)
	if err != nil {
		return fail(err)
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath != "" {
		err = store.EnsureDir(dbPath)
	} else {
		dbPath, err = store.DefaultDBPath()
	}
	if err != nil {
		return fail(fmt.Errorf("resolve DB path: %w", err))
	}
	e.store, err = store.Open(dbPath)
	if err != nil {
		return fail(fmt.Errorf("open store: %w", err))
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, e.store.EventRepo(), e.logger)
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		e.logger.Info().Str("provider", cfg.LLM.Provider).Msg("no API key configured, using offline suggestions")
	case err != nil:
		e.Close()
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	e.fetcher = recommend.New(provider, recommend.Config{
		APIKey:  cfg.LLM.APIKey(),
		Timeout: cfg.FetchTimeout,
	}, recommend.WithLogger(e.logger))

	return e, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(cmd.Context(), app.Options{
		Fetcher: e.fetcher,
		Notes:   notes.NewPad(e.store.KV()),
		Roster:  roster.Seed(),
		Logger:  e.logger,
	})
}
