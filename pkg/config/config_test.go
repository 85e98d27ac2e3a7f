package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 3*time.Hour, cfg.Inventory.AlertInterval, "intervalo de referencia: 3 horas")
	assert.Equal(t, 20, cfg.Inventory.MovementsLimit)
	assert.Equal(t, config.DeletePolicyDangling, cfg.Inventory.DeletePolicy)
	assert.Contains(t, cfg.DB.Path, "estoque.db")
}

func TestLoad_IntervaloEnMilisegundos(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ALERT_INTERVAL", "10800000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour, cfg.Inventory.AlertInterval)
}

func TestLoad_IntervaloComoDuracion(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ALERT_INTERVAL", "15m")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Inventory.AlertInterval)
}

func TestLoad_PoliticaDeBorradoInvalida(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DELETE_POLICY", "nunca")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	dsn := config.DBConfig{Path: "dados/estoque.db", BusyTimeoutMS: 5000}.DSN()
	assert.Contains(t, dsn, "file:dados/estoque.db")
	assert.Contains(t, dsn, "busy_timeout(5000)")
	assert.Contains(t, dsn, "foreign_keys(0)")
}
