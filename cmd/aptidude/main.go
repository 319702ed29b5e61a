package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aptidude/aptidude/internal/cli"
	"github.com/aptidude/aptidude/internal/config"
	"github.com/aptidude/aptidude/internal/localdb"
	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/records"
	"github.com/aptidude/aptidude/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}
	if z, ok := log.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Debug(ctx, "database ready", "path", cfg.DatabasePath, "timezone", cfg.Timezone)

	s := session.New(records.NewSQLiteRepository(db), log, session.WithTimezone(cfg.Timezone))
	return cli.NewApp(s, os.Stdin, os.Stdout, log).Run(ctx)
}
