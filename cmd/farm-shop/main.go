package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/sdk/app"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	appkg "github.com/xenking/farm-shop/internal/app"
)

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger, m *app.Telemetry) error {
		return command(lg, m).Run(ctx, os.Args)
	})
}

func command(lg *zap.Logger, m *app.Telemetry) *cli.Command {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to a YAML config file (default farm.yaml, /etc/farm/farm.yaml)",
	}

	return &cli.Command{
		Name:  "farm-shop",
		Usage: "run the farm shop text menu",
		Flags: []cli.Flag{configFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := appkg.LoadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			shopLog, err := cfg.Log.Logger(lg)
			if err != nil {
				return err
			}
			return appkg.Run(ctx, shopLog, m.MeterProvider(), cfg, os.Stdin, os.Stdout)
		},
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "load and validate the configuration, then exit",
				Flags: []cli.Flag{configFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return validate(cmd.String("config"), os.Stdout)
				},
			},
		},
	}
}

func validate(path string, out io.Writer) error {
	cfg, err := appkg.LoadConfig(path)
	if err != nil {
		return err
	}
	stock, err := cfg.StockEntries()
	if err != nil {
		return err
	}
	customers, err := cfg.CustomerRecords()
	if err != nil {
		return err
	}
	discounts, err := cfg.DiscountTable()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "config ok: %d stock entries, %d customers, discounts %s\n",
		len(stock), len(customers), discounts)
	return err
}
