package main

import (
	"flag"
	"os"

	"github.com/hugohenrick/bizit/internal/config"
	"github.com/hugohenrick/bizit/internal/infrastructure/database"
	"github.com/hugohenrick/bizit/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", "", "arquivo .env a ser carregado")
	down := flag.Int("down", 0, "quantidade de migrações a desfazer; zero aplica as pendentes")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()
	log := logger.Named(baseLogger, "migration")

	if cfg.Database.Driver != config.DriverPostgres {
		baseLogger.Warn("driver sem migrações", zap.String("driver", cfg.Database.Driver))
		return
	}

	if *down > 0 {
		err = database.RollbackMigrations(cfg.Database.ConnectionString(), *down, log)
	} else {
		err = database.RunMigrations(cfg.Database.ConnectionString(), log)
	}
	if err != nil {
		baseLogger.Error("falha nas migrações", zap.Error(err))
		_ = baseLogger.Sync()
		os.Exit(1)
	}

	baseLogger.Info("migrações executadas com sucesso")
}
