package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/assistant"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/catalog"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/config"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/metrics"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/storage"
)

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLocationFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "location",
		Usage:   "Catalog location (local .json/.xlsx, http(s) URL or s3://bucket/key)",
		EnvVars: []string{"ASSISTANT_CATALOG_LOCATION"},
	}
}

func filtersCommand() *cli.Command {
	return &cli.Command{
		Name:  "filters",
		Usage: "Print the filter options the dashboard offers",
		Action: func(c *cli.Context) error {
			return printJSON(domain.AvailableFilters())
		},
	}
}

func deriveCommand() *cli.Command {
	return &cli.Command{
		Name:  "derive",
		Usage: "Derive the KPIs and charts of one tab for a filter selection",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tab", Usage: "Dashboard tab", Value: string(domain.TabDemandSupply)},
			&cli.StringFlag{Name: "region", Value: string(domain.RegionAll)},
			&cli.StringFlag{Name: "time-range", Value: string(domain.TimeRangeLast30Days)},
			&cli.StringFlag{Name: "product-category", Value: string(domain.CategoryAll)},
			&cli.StringFlag{Name: "channel", Value: string(domain.ChannelAll)},
		},
		Action: func(c *cli.Context) error {
			state := domain.NewFilterState()
			state.Set(domain.FilterRegion, c.String("region"))
			state.Set(domain.FilterTimeRange, c.String("time-range"))
			state.Set(domain.FilterProductCategory, c.String("product-category"))
			state.Set(domain.FilterChannel, c.String("channel"))
			if state.Dirty() {
				state.Apply()
			}
			filters := state.Applied.Normalize()

			dashboard, err := metrics.Dashboard(domain.Tab(c.String("tab")), filters)
			if err != nil {
				return cli.Exit(fmt.Sprintf("%v (tabs: %s)", err, joinTabs(metrics.Tabs())), 1)
			}
			return printJSON(dashboard)
		},
	}
}

func joinTabs(tabs []domain.Tab) string {
	names := make([]string, len(tabs))
	for i, t := range tabs {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func executiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "executive",
		Usage: "Print the executive summary, or answer a quick question about it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "question", Aliases: []string{"q"}, Usage: "Quick question, e.g. \"why\" or \"how to fix\""},
		},
		Action: func(c *cli.Context) error {
			if q := strings.TrimSpace(c.String("question")); q != "" {
				fmt.Println(metrics.QuickAnswer(q))
				return nil
			}
			return printJSON(metrics.Summary())
		},
	}
}

func askCommand() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask the assistant a question",
		ArgsUsage: "<question>",
		Flags:     []cli.Flag{newLocationFlag()},
		Action: func(c *cli.Context) error {
			text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if text == "" {
				return cli.Exit("a question is required", 1)
			}

			var kpis []domain.KPI
			if location := c.String("location"); location != "" {
				loader, err := newLoader(c)
				if err != nil {
					return err
				}
				if kpis, err = loader.Load(c.Context, location); err != nil {
					return err
				}
			}

			return printJSON(assistant.Respond(assistant.ExpandQuickInsight(text), kpis))
		},
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect and fetch the KPI catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Load the catalog and print its KPIs",
				Flags: []cli.Flag{newLocationFlag()},
				Action: func(c *cli.Context) error {
					location := c.String("location")
					if location == "" {
						location = config.Load().Assistant.CatalogLocation
					}
					loader, err := newLoader(c)
					if err != nil {
						return err
					}
					kpis, err := loader.Load(c.Context, location)
					if err != nil {
						return err
					}
					return printJSON(kpis)
				},
			},
			{
				Name:  "pull",
				Usage: "Download catalog files from object storage",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "prefix", Usage: "Object prefix to list", Value: "catalog/"},
					&cli.StringFlag{Name: "key", Usage: "Download a single object key instead of listing the prefix"},
					&cli.StringFlag{Name: "dest", Usage: "Destination directory", Value: "./data/tmp/catalog"},
				},
				Action: func(c *cli.Context) error {
					store, err := newObjectStorage()
					if err != nil {
						return err
					}
					if store == nil {
						return cli.Exit("object storage is not configured (SEVALLA_ENDPOINT, SEVALLA_BUCKET)", 1)
					}
					paths, err := pullCatalog(c.Context, store, c.String("prefix"), c.String("key"), c.String("dest"))
					if err != nil {
						return err
					}
					for _, p := range paths {
						fmt.Println(p)
					}
					return nil
				},
			},
		},
	}
}

// newObjectStorage returns nil when no bucket is configured.
func newObjectStorage() (storage.ObjectStorage, error) {
	cfg := config.Load().Storage.Sevalla()
	if !cfg.Enabled() {
		return nil, nil
	}
	client, err := storage.NewSevallaClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newLoader(c *cli.Context) (*catalog.Loader, error) {
	if !strings.HasPrefix(c.String("location"), "s3://") && c.String("location") != "" {
		return catalog.NewLoader(nil), nil
	}
	store, err := newObjectStorage()
	if err != nil {
		return nil, err
	}
	return catalog.NewLoader(store), nil
}
