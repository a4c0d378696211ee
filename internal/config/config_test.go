package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load resets viper's global state so each case sees only its own env.
func load(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "data.csv", cfg.CatalogPath)
	assert.True(t, cfg.Target.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, time.Date(2024, 9, 26, 0, 0, 0, 0, time.UTC), cfg.Start)
	assert.Equal(t, time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC), cfg.End)
	assert.Equal(t, int64(42), cfg.RandomSeed)

	assert.True(t, filepath.IsAbs(cfg.Stages.Products))
	assert.Equal(t, "products_stage.csv", filepath.Base(cfg.Stages.Products))
	assert.Equal(t, "orders_stage.csv", filepath.Base(cfg.Stages.Orders))
	assert.Equal(t, "order_items_stage.csv", filepath.Base(cfg.Stages.OrderItems))
	assert.Equal(t, "product_recipe_stage.csv", filepath.Base(cfg.Stages.ProductRecipe))
	assert.True(t, filepath.IsAbs(cfg.ScriptPath))
	assert.Equal(t, "seed.sql", filepath.Base(cfg.ScriptPath))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_PATH", "menu.csv")
	t.Setenv("TARGET_REVENUE", "2500.50")
	t.Setenv("START_DATE", "2025-01-01")
	t.Setenv("END_DATE", "2025-01-31")
	t.Setenv("RANDOM_SEED", "7")
	t.Setenv("OUTPUT_DIR", t.TempDir())

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "menu.csv", cfg.CatalogPath)
	assert.True(t, cfg.Target.Equal(decimal.RequireFromString("2500.50")))
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Start)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), cfg.End)
}

func TestLoad_InvalidOptions(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-decimal target", "TARGET_REVENUE", "a lot"},
		{"negative target", "TARGET_REVENUE", "-5.00"},
		{"zero target", "TARGET_REVENUE", "0"},
		{"malformed start date", "START_DATE", "26-09-2024"},
		{"malformed end date", "END_DATE", "christmas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := load(t)
			require.Error(t, err)
		})
	}
}

func TestLoad_EndBeforeStart(t *testing.T) {
	t.Setenv("START_DATE", "2025-06-01")
	t.Setenv("END_DATE", "2025-05-01")
	_, err := load(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before START_DATE")
}
