package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	in       io.Reader
	out, err io.Writer

	configPath string
	logFile    string
	flags      config.Config // flag values, applied only when Changed

	cfg       config.Config
	log       *slog.Logger
	collector *metrics.Collector
	server    *http.Server
	closers   []io.Closer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, err: errOut, flags: config.Default()}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Visualize breadth-first and depth-first search on a grid",
		Long: `gridpath lets you paint start, end and wall cells on a square grid and
watch breadth-first or depth-first search explore it step by step.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.IntVar(&a.flags.Size, "size", a.flags.Size, "grid dimension N for an N×N grid")
	pf.DurationVar(&a.flags.Delay, "delay", a.flags.Delay, "pause between animated steps")
	pf.IntVar(&a.flags.CellWidth, "cell-width", a.flags.CellWidth, "terminal columns per cell")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", a.flags.LogFormat, "text or json")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVar(&a.flags.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(newPlayCmd(a), newSolveCmd(a), newGenerateCmd(a), newVersionCmd())
	return root
}

// setup resolves configuration (defaults, file, env, flags), then builds
// the logger and the metrics collector.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	a.applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	w := a.err
	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		w = f
	} else if cmd.Name() == "play" {
		// stderr would tear the full-screen UI
		w = io.Discard
	}
	a.log = logging.New(cfg.LogLevel, cfg.LogFormat, w)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.log))

	a.collector = metrics.New()
	if cfg.MetricsAddr != "" {
		if err := a.serveMetrics(cfg.MetricsAddr); err != nil {
			return err
		}
	}
	a.log.Debug("configuration resolved",
		slog.Int("size", cfg.Size),
		slog.Duration("delay", cfg.Delay),
		slog.String("algorithm", cfg.Algorithm))
	return nil
}

func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("size") {
		cfg.Size = a.flags.Size
	}
	if fs.Changed("delay") {
		cfg.Delay = a.flags.Delay
	}
	if fs.Changed("cell-width") {
		cfg.CellWidth = a.flags.CellWidth
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = a.flags.MetricsAddr
	}
}

func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.collector.Handler())
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", slog.Any("error", err))
		}
	}()
	a.log.Info("serving metrics", slog.String("addr", ln.Addr().String()))
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	var errs []error
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		errs = append(errs, a.server.Shutdown(ctx))
	}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// runOptions are attached to every run started by a subcommand.
func (a *app) runOptions(maxSteps int) []search.Option {
	return []search.Option{
		search.WithObserver(a.collector),
		search.WithMaxSteps(maxSteps),
	}
}
