package main

import (
	"flag"
	"os"

	"github.com/jhoicas/MissVentas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/MissVentas-api/pkg/config"
	"github.com/jhoicas/MissVentas-api/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "revertir todas las migraciones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	dsn := cfg.DB.ConnectionString()
	if *down {
		err = postgres.MigrateDown(dsn, log.Zerolog())
	} else {
		err = postgres.Migrate(dsn, log.Zerolog())
	}
	if err != nil {
		log.Error().Err(err).Msg("migraciones")
		os.Exit(1)
	}
}
