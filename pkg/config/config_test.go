package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MissVentas-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	// Viper ignora variables vacías: se aplican los valores por defecto
	for _, k := range []string{"STORE_DRIVER", "HTTP_PORT", "LEDGER_ENFORCE_STOCK", "LEDGER_RECONCILE_ON_SALE", "LEDGER_LOW_STOCK_THRESHOLD"} {
		t.Setenv(k, "")
	}
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Ledger.EnforceStock)
	assert.True(t, cfg.Ledger.ReconcileOnSale)
	assert.Equal(t, 2, cfg.Ledger.LowStockThreshold)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_ENFORCE_STOCK", "false")
	t.Setenv("LEDGER_LOW_STOCK_THRESHOLD", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Ledger.EnforceStock)
	assert.True(t, cfg.Ledger.ReconcileOnSale)
	assert.Equal(t, 5, cfg.Ledger.LowStockThreshold)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "ventas", Password: "p@ss:w/rd", DBName: "mv", SSLMode: "disable"}
	assert.Equal(t, "postgres://ventas:p%40ss%3Aw%2Frd@db:5432/mv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
