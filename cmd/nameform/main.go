package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jask/nameform/internal/config"
	"github.com/jask/nameform/internal/form"
	"github.com/jask/nameform/internal/logging"
	"github.com/jask/nameform/internal/prompt"
	"github.com/jask/nameform/internal/replay"
	"github.com/jask/nameform/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type mode int

const (
	modeTUI mode = iota
	modePrompt
	modeReplay
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nameform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	usePrompt := fs.Bool("prompt", false, "ask for each field on the command line instead of the full-screen form")
	replayPath := fs.String("replay", "", "run a YAML event script and print the state trace")
	cfgPath := fs.String("config", "", "config file (default $NAMEFORM_CONFIG or the user config dir)")
	writeConfig := fs.Bool("write-config", false, "write the default config file and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *usePrompt && *replayPath != "" {
		return errors.New("cannot use -prompt and -replay together")
	}

	if *writeConfig {
		return writeDefaultConfig(*cfgPath, stdout)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	m := modeTUI
	switch {
	case *usePrompt:
		m = modePrompt
	case *replayPath != "":
		m = modeReplay
	}

	logger, closeLog, err := newLogger(cfg.Log, m, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if m == modeReplay {
		return runReplay(*replayPath, logger, stdout)
	}

	ctrl := form.NewController(form.Options{ClearErrorsOnSuccess: cfg.Form.ClearErrorsOnSuccess})
	session := form.NewSession(ctrl, logger)
	defer session.End()

	if m == modePrompt {
		_, err := prompt.Run(ctx, prompt.NewSurveyDriver(stdout), session)
		if errors.Is(err, prompt.ErrInterrupted) {
			return nil
		}
		return err
	}

	keys := tui.NewKeyRegistry()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		return fmt.Errorf("config keys: %w", err)
	}
	final, err := tui.Run(ctx, session, tui.Options{Title: cfg.UI.Title, Keys: keys, Logger: logger})
	if err != nil {
		return err
	}
	if final.FullName != "" {
		fmt.Fprintln(stdout, "Nama Lengkap: "+final.FullName)
	}
	return nil
}

func writeDefaultConfig(path string, stdout io.Writer) error {
	if path == "" {
		path = os.Getenv("NAMEFORM_CONFIG")
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "wrote", path)
	return nil
}

func runReplay(path string, logger *slog.Logger, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	script, err := replay.Parse(f)
	if err != nil {
		return err
	}
	trace, runErr := replay.Run(script, logger)
	if err := trace.Encode(stdout); err != nil {
		return err
	}
	return runErr
}

// newLogger sends logs to the configured file. With no file, the terminal
// UI discards logs because it owns the screen; other modes use stderr.
func newLogger(cfg config.LogConfig, m mode, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		if m == modeTUI {
			return logging.Discard(), func() {}, nil
		}
		return logging.New(stderr, level), func() {}, nil
	}
	f, err := logging.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level), func() { _ = f.Close() }, nil
}
