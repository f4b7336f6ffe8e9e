package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zserge/o/internal/config"
	"github.com/zserge/o/internal/demo"
	"github.com/zserge/o/pkg/server"
	"github.com/zserge/o/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		app     string
		cfgPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live demo server",
		Long: `Start the demo server. Each browser connection gets its own session:
components render on the server and the page mirrors them over a
WebSocket.

Examples:
  o serve
  o serve --addr=0.0.0.0:8080 --app=todos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, app, cfgPath)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from o.yaml)")
	cmd.Flags().StringVar(&app, "app", "", "Demo app to serve (default from o.yaml)")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to o.yaml")

	return cmd
}

func runServe(addr, app, cfgPath string) error {
	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if app != "" {
		cfg.App = app
	}

	component, ok := demo.Apps[cfg.App]
	if !ok {
		return fmt.Errorf("unknown demo app %q, available: %s", cfg.App, strings.Join(appNames(), ", "))
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	srv, err := server.New(server.Config{
		Addr:    cfg.Addr,
		Title:   "o · " + cfg.App,
		Metrics: cfg.Metrics,
		Logger:  log,
		Root: func() *vdom.VNode {
			return vdom.H(component, nil)
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving demo", "app", cfg.App, "addr", cfg.Addr)
	return srv.Start(ctx)
}

func appNames() []string {
	names := make([]string, 0, len(demo.Apps))
	for name := range demo.Apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
