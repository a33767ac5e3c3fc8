package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-delights/internal/api"
	"cafe-delights/internal/app"
	"cafe-delights/internal/cart"
	"cafe-delights/internal/common/config"
	"cafe-delights/internal/common/httpx"
	"cafe-delights/internal/common/logger"
	"cafe-delights/internal/common/tracing"
	"cafe-delights/internal/nav"
	"cafe-delights/internal/session"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (default: probe usual locations)")
	server := flag.String("server", "", "override API base URL")
	trace := flag.Bool("trace", false, "emit OpenTelemetry spans to stdout")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		if found, err := config.FindConfig(); err == nil {
			path = found
		} else if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "config probe error:", err)
			os.Exit(2)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load error:", err)
		os.Exit(2)
	}
	if *server != "" {
		cfg.API.BaseURL = *server
	}

	lg := logger.NewWithLevel("cafe-delights", logger.ParseLevel(cfg.LogLevel))
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *trace || cfg.Tracing {
		shutdown, err := tracing.Init(ctx)
		if err != nil {
			lg.Error("tracing_init_failed", err, nil)
		} else {
			defer func() {
				ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel2()
				_ = shutdown(ctx2)
			}()
		}
	}

	client := api.NewClient(cfg.API.BaseURL, httpx.NewClient(cfg.API.Timeout.Std()), lg)
	creds := session.NewCredFile(cfg.StateDir)
	sess := session.NewStore(client, creds, lg)
	basket := cart.New()
	navigator := nav.New(ctx)

	lg.Info("client_started", map[string]any{"api": cfg.API.BaseURL})
	sess.Initialize(ctx)

	shell := app.NewShell(lg, client, sess, basket, navigator, os.Stdout)
	if err := shell.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("client_stopped", nil)
}
