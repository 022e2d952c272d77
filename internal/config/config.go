package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"MikroPanel"`
		Port int    `envconfig:"PORT" default:"8080"`
		Env  string `envconfig:"APP_ENV" default:"development"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"mikropanel"`
	}

	Server struct {
		Timeout      time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
		WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
		IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"1m"`
		CORSOrigins  []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	}

	Auth struct {
		JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
		SessionTTL        time.Duration `envconfig:"SESSION_TTL" default:"8h"`
		BootstrapUser     string        `envconfig:"BOOTSTRAP_USER"`
		BootstrapPassword string        `envconfig:"BOOTSTRAP_PASSWORD"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	Scheduler struct {
		Enabled  bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
		Timezone string `envconfig:"SCHEDULER_TIMEZONE" default:"America/Havana"`
		At       string `envconfig:"SCHEDULER_AT" default:"00:05"`
	}

	TUI struct {
		Actor string `envconfig:"TUI_ACTOR" default:"consola"`
	}

	Billing Billing
}

// Billing holds the figures used by the closing, proration and sales bonus
// arithmetic. Monetary values are expressed in currency units.
type Billing struct {
	CycleDay       int             `envconfig:"BILLING_CYCLE_DAY" default:"5"`
	FixedCost      decimal.Decimal `envconfig:"BILLING_FIXED_COST" default:"130"`
	MarginStandard decimal.Decimal `envconfig:"BILLING_MARGIN_STANDARD" default:"3.75"`
	MarginPremium  decimal.Decimal `envconfig:"BILLING_MARGIN_PREMIUM" default:"5.25"`
	PremiumTariff  decimal.Decimal `envconfig:"BILLING_PREMIUM_TARIFF" default:"7"`
	TargetUnits    int             `envconfig:"BILLING_TARGET_UNITS" default:"170"`
	RouterFee      decimal.Decimal `envconfig:"BILLING_ROUTER_FEE" default:"15"`
	NanoGain       decimal.Decimal `envconfig:"BILLING_NANO_GAIN" default:"140"`
	SalesResetDay  int             `envconfig:"BILLING_SALES_RESET_DAY" default:"7"`
}

// Closing converts the billing figures into closing settings in cents.
func (b Billing) Closing() closing.Settings {
	return closing.Settings{
		Params: closing.Params{
			FixedCost:      money.FromDecimal(b.FixedCost),
			MarginStandard: money.FromDecimal(b.MarginStandard),
			MarginPremium:  money.FromDecimal(b.MarginPremium),
			PremiumTariff:  money.FromDecimal(b.PremiumTariff),
		},
		CycleDay:      b.CycleDay,
		TargetUnits:   b.TargetUnits,
		SalesResetDay: b.SalesResetDay,
		NanoGain:      money.FromDecimal(b.NanoGain),
		RouterFee:     money.FromDecimal(b.RouterFee),
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Billing.CycleDay < 1 || cfg.Billing.CycleDay > 28 {
		return nil, fmt.Errorf("billing cycle day must be between 1 and 28, got %d", cfg.Billing.CycleDay)
	}

	if cfg.Billing.SalesResetDay < 1 || cfg.Billing.SalesResetDay > 28 {
		return nil, fmt.Errorf("sales reset day must be between 1 and 28, got %d", cfg.Billing.SalesResetDay)
	}

	return &cfg, nil
}
