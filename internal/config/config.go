package config

import (
	"fmt"
	"os"
	"shelf/internal/lending"

	"gopkg.in/yaml.v3"
)

// Config is the optional config file. Every field has a default; flags
// override the file, the file overrides the defaults. The fee fields
// are pointers so an explicit zero survives: "daily_fee: 0" means free
// lending, not the default rate.
type Config struct {
	CatalogPath    string   `yaml:"catalog_path,omitempty"`
	LedgerPath     string   `yaml:"ledger_path,omitempty"`
	LoanPeriodDays *int     `yaml:"loan_period_days,omitempty"`
	DailyFee       *float64 `yaml:"daily_fee,omitempty"`
}

// Resolved is a Config with every default applied.
type Resolved struct {
	CatalogPath    string
	LedgerPath     string
	LoanPeriodDays int
	DailyFee       float64
}

// Load reads the config file at path. A missing file yields a zero
// Config and no error.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// Resolved fills in defaults for anything the file left unset.
func (c Config) Resolved() Resolved {
	out := Resolved{
		CatalogPath:    c.CatalogPath,
		LedgerPath:     c.LedgerPath,
		LoanPeriodDays: lending.DefaultLoanPeriodDays,
		DailyFee:       lending.DefaultDailyFee,
	}
	if out.CatalogPath == "" {
		out.CatalogPath = DefaultCatalogPath()
	}
	if out.LedgerPath == "" {
		out.LedgerPath = DefaultLedgerPath()
	}
	if c.LoanPeriodDays != nil {
		out.LoanPeriodDays = *c.LoanPeriodDays
	}
	if c.DailyFee != nil {
		out.DailyFee = *c.DailyFee
	}
	return out
}
