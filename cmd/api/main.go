package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/bizit/internal/config"
	"github.com/hugohenrick/bizit/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", "", "arquivo .env a ser carregado")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("falha ao inicializar aplicação", zap.Error(err))
	}

	err = app.Run(ctx)
	app.Close()
	if err != nil {
		baseLogger.Error("aplicação encerrada com erro", zap.Error(err))
		_ = baseLogger.Sync()
		os.Exit(1)
	}
	baseLogger.Info("aplicação encerrada")
}
