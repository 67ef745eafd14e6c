package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/kickoff/agent"
	"github.com/nstehr/kickoff/config"
	"github.com/nstehr/kickoff/replay"
	"github.com/nstehr/kickoff/strategy"
)

const banner = `
 _    _      _          __  __
| | _(_) ___| | _____  / _|/ _|
| |/ / |/ __| |/ / _ \| |_| |_
|   <| | (__|   < (_) |  _|  _|
|_|\_\_|\___|_|\_\___/|_| |_|

Per-tick behavior stack for ball-game agents`

func main() {
	configPath := flag.String("config", "", "TOML tuning file")
	inPath := flag.String("in", "", "input frame stream (default stdin)")
	outPath := flag.String("out", "", "output frame stream (default stdout)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// stdout may carry frames, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	fmt.Fprintln(os.Stderr, banner)

	if err := run(cfg, *inPath, *outPath); err != nil {
		slog.Error("session failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, inPath, outPath string) error {
	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	engine, err := strategy.NewPostureEngine(cfg.Posture)
	if err != nil {
		return fmt.Errorf("compile posture %q: %w", cfg.Posture.Name, err)
	}
	a := agent.New(engine, cfg.AgentOptions())

	slog.Info("starting kickoff",
		"session", a.ID.String(),
		"posture", cfg.Posture.Name,
		"rules", engine.Names(),
		"maxSteps", cfg.Runner.MaxStepsPerTick,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := replay.NewSession(in, out, nil)
	s.RegisterHandler(replay.TypeHello, a.HandleHello)
	s.RegisterHandler(replay.TypeTick, a.HandleGameState)
	err = s.ReadLoop(ctx)

	slog.Info("session finished", "frames", s.Frames(), "overruns", a.Overruns())
	return err
}
