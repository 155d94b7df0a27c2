package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/leonardinius/sqlvalue/cmd"
	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
)

func main() {
	config, err := cmd.LoadConfigFromEnv()
	if err != nil {
		sqlerrors.DefaultReportError(os.Stderr, err)
		os.Exit(cmd.ExitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	app := cmd.NewApp(cmd.WithConfig(config))
	code := app.Main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
