package app

import (
	"strconv"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/discount"
	"github.com/xenking/farm-shop/internal/domain/product"
)

// Config holds the complete application configuration, loadable from
// environment variables (FARM_ prefix) or YAML config files.
type Config struct {
	Shop      ShopConfig
	Inventory InventoryConfig
	Stock     []string `usage:"Initial stock entries as barcode:quality:qty"`
	Customers []string `usage:"Initial customers as name:phone:address"`
	Discounts []string `usage:"Special sale discounts as barcode:percent"`
	Log       LogConfig
}

// ShopConfig is printed at the top of every receipt.
type ShopConfig struct {
	Name    string `default:"The Farm Shop" usage:"Shop name on receipts"`
	Address string `default:"1 Paddock Lane, Greenfield" usage:"Shop address on receipts"`
}

// InventoryConfig selects the inventory implementation.
type InventoryConfig struct {
	Fancy bool `default:"true" usage:"Use the fancy inventory with bulk operations"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level       string `default:"info" usage:"Minimum log level"`
	Development bool   `default:"false" usage:"Enable development mode logging"`
}

// StockEntry is a parsed Stock entry.
type StockEntry struct {
	Barcode  product.Barcode
	Quality  product.Quality
	Quantity int
}

// LoadConfig loads configuration from environment variables and YAML config
// files. When path is not empty it replaces the default file locations.
func LoadConfig(path string) (*Config, error) {
	files := []string{"farm.yaml", "/etc/farm/farm.yaml"}
	if path != "" {
		files = []string{path}
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:          "FARM",
		SkipFlags:          true,
		Files:              files,
		FailOnFileNotFound: path != "",
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
			".yml":  aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

// Validate parses every list entry and the log level.
func (c *Config) Validate() error {
	if _, err := c.StockEntries(); err != nil {
		return err
	}
	if _, err := c.CustomerRecords(); err != nil {
		return err
	}
	if _, err := c.DiscountTable(); err != nil {
		return err
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// StockEntries parses Stock. The quantity defaults to 1.
func (c *Config) StockEntries() ([]StockEntry, error) {
	entries := make([]StockEntry, 0, len(c.Stock))
	for _, raw := range c.Stock {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Errorf("stock entry %q: want barcode:quality[:qty]", raw)
		}
		b, err := product.ParseBarcode(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "stock entry %q", raw)
		}
		q, err := product.ParseQuality(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "stock entry %q", raw)
		}
		e := StockEntry{Barcode: b, Quality: q, Quantity: 1}
		if len(parts) == 3 {
			n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
			if err != nil || n < 1 {
				return nil, errors.Errorf("stock entry %q: quantity must be a positive number", raw)
			}
			e.Quantity = n
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CustomerRecords parses Customers. The address may contain colons.
func (c *Config) CustomerRecords() ([]*customer.Customer, error) {
	records := make([]*customer.Customer, 0, len(c.Customers))
	for _, raw := range c.Customers {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return nil, errors.Errorf("customer entry %q: want name:phone:address", raw)
		}
		phone, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || phone < 0 {
			return nil, errors.Errorf("customer entry %q: invalid phone number", raw)
		}
		records = append(records, customer.New(strings.TrimSpace(parts[0]), phone, strings.TrimSpace(parts[2])))
	}
	return records, nil
}

// DiscountTable parses Discounts.
func (c *Config) DiscountTable() (discount.Table, error) {
	t, err := discount.Parse(c.Discounts)
	if err != nil {
		return discount.Table{}, errors.Wrap(err, "discounts")
	}
	return t, nil
}

// ZapLevel parses Level.
func (c LogConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrap(err, "log level")
	}
	return lvl, nil
}

// Logger applies the configured level and mode to lg. The level can only
// raise the minimum level of lg, never lower it.
func (c LogConfig) Logger(lg *zap.Logger) (*zap.Logger, error) {
	lvl, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}
	opts := []zap.Option{zap.IncreaseLevel(lvl)}
	if c.Development {
		opts = append(opts, zap.Development())
	}
	return lg.WithOptions(opts...), nil
}
