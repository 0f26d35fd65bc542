// backend-go/cmd/bictl/main.go
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/fulfillment-bi/backend-go/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "bictl",
		Usage: "Inspect dashboard derivations, the KPI catalog and the assistant from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			filtersCommand(),
			deriveCommand(),
			executiveCommand(),
			askCommand(),
			catalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("bictl failed")
	}
}
