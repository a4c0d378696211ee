package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// StagePaths holds the locations of the four intermediate artifacts. All
// paths are absolute because the emitted \copy statements require absolute
// paths on the database host.
type StagePaths struct {
	Products      string
	Orders        string
	OrderItems    string
	ProductRecipe string
}

// Config holds all runtime configuration loaded from environment variables.
// Every mapped field corresponds 1:1 to a documented env var.
type Config struct {
	CatalogPath   string `mapstructure:"CATALOG_PATH" validate:"required"`
	TargetRevenue string `mapstructure:"TARGET_REVENUE" validate:"required"`
	StartDate     string `mapstructure:"START_DATE" validate:"required,datetime=2006-01-02"`
	EndDate       string `mapstructure:"END_DATE" validate:"required,datetime=2006-01-02"`
	RandomSeed    int64  `mapstructure:"RANDOM_SEED"`
	OutputDir     string `mapstructure:"OUTPUT_DIR" validate:"required"`
	OutputSQL     string `mapstructure:"OUTPUT_SQL" validate:"required"`

	// Parsed forms, populated by Load after unmarshalling.
	Target decimal.Decimal `mapstructure:"-" validate:"gt=0"`
	Start  time.Time       `mapstructure:"-"`
	End    time.Time       `mapstructure:"-"`

	// Derived artifact locations under OutputDir.
	Stages     StagePaths `mapstructure:"-"`
	ScriptPath string     `mapstructure:"-"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Defaults match a one-year window and a $1,000,000 target.
	viper.SetDefault("CATALOG_PATH", "data.csv")
	viper.SetDefault("TARGET_REVENUE", "1000000.00")
	viper.SetDefault("START_DATE", "2024-09-26")
	viper.SetDefault("END_DATE", "2025-09-26")
	viper.SetDefault("RANDOM_SEED", 42)
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("OUTPUT_SQL", "seed.sql")

	// Optional .env file for local runs — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve parses the string-typed options into their working forms, validates
// the result, and derives the artifact paths.
func (c *Config) resolve() error {
	target, err := decimal.NewFromString(c.TargetRevenue)
	if err != nil {
		return fmt.Errorf("TARGET_REVENUE %q is not a decimal: %w", c.TargetRevenue, err)
	}
	c.Target = target

	if c.Start, err = time.Parse(dateLayout, c.StartDate); err != nil {
		return fmt.Errorf("START_DATE: %w", err)
	}
	if c.End, err = time.Parse(dateLayout, c.EndDate); err != nil {
		return fmt.Errorf("END_DATE: %w", err)
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("END_DATE %s is before START_DATE %s", c.EndDate, c.StartDate)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	outDir, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return fmt.Errorf("OUTPUT_DIR: %w", err)
	}
	c.Stages = StagePaths{
		Products:      filepath.Join(outDir, "products_stage.csv"),
		Orders:        filepath.Join(outDir, "orders_stage.csv"),
		OrderItems:    filepath.Join(outDir, "order_items_stage.csv"),
		ProductRecipe: filepath.Join(outDir, "product_recipe_stage.csv"),
	}
	c.ScriptPath = c.OutputSQL
	if !filepath.IsAbs(c.ScriptPath) {
		c.ScriptPath = filepath.Join(outDir, c.ScriptPath)
	}
	return nil
}
