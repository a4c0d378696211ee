// cmd/seedgen/main.go — Generates the synthetic historical order data set.
// Usage: go run cmd/seedgen/main.go
package main

import (
	"os"
	"time"

	"bobaseed/internal/catalog"
	"bobaseed/internal/config"
	"bobaseed/internal/emit"
	"bobaseed/internal/generate"
	"bobaseed/internal/plan"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	runID := uuid.New()
	log.Info().
		Str("run_id", runID.String()).
		Str("catalog", cfg.CatalogPath).
		Str("target", cfg.Target.StringFixed(2)).
		Str("window", cfg.StartDate+".."+cfg.EndDate).
		Int64("seed", cfg.RandomSeed).
		Msg("starting seed generation")

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}
	recipes := cat.Recipes()
	log.Info().Int("products", len(cat.Products)).Int("recipe_lines", len(recipes)).Msg("catalog loaded")

	p, err := plan.Build(cfg.Target, cfg.Start, cfg.End, cat.MeanUnitPrice())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to plan order volume")
	}
	log.Info().
		Int("days", len(p.Days)).
		Int("total_orders", p.TotalOrders).
		Int("orders_per_day", p.OrdersPerDay).
		Int("remainder", p.Remainder).
		Msg("volume planned")

	orders, items, err := generate.New(cfg.RandomSeed, cat.Products).Run(p)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to synthesize orders")
	}
	log.Info().Int("orders", len(orders)).Int("order_items", len(items)).Msg("orders synthesized")

	if err := emit.WriteStages(cfg.Stages, cat.Products, recipes, orders, items); err != nil {
		log.Fatal().Err(err).Msg("failed to write stage artifacts")
	}
	if err := emit.WriteLoadScript(cfg.ScriptPath, cfg.Stages, runID); err != nil {
		log.Fatal().Err(err).Msg("failed to write load script")
	}
	log.Info().Str("script", cfg.ScriptPath).Msg("artifacts written")
}
