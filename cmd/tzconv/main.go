package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"tzconv/config"
	"tzconv/di"
	"tzconv/shared/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := di.InitializeCLI().Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
