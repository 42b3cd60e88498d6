package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gobuffalo/envy"
	"github.com/urfave/cli"

	"github.com/splunkbase-bot/splunkbase-urls/config"
	"github.com/splunkbase-bot/splunkbase-urls/log"
	"github.com/splunkbase-bot/splunkbase-urls/printer"
	"github.com/splunkbase-bot/splunkbase-urls/splunkbase"
)

func main() {

	var verbose bool
	var asTable bool
	var urlsOnly bool
	var target string
	var configPath string
	var baseURL string

	app := cli.NewApp()
	app.Name = "splunkbase-urls"
	app.Usage = "Print the latest download URLs of Splunkbase apps"
	app.ArgsUsage = "[app id...]"
	app.Version = "0.0.1"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "App list used when no app ids are given",
			Value:       config.DefaultAppsFile,
			Destination: &configPath,
		}, cli.StringFlag{
			Name:        "target",
			Usage:       "Target only one app of the app list",
			Destination: &target,
		}, cli.StringFlag{
			Name:        "base-url",
			Usage:       "Splunkbase base URL",
			Value:       envy.Get("SPLUNKBASE_URL", splunkbase.DefaultBaseURL),
			Destination: &baseURL,
		}, cli.BoolFlag{
			Name:        "table, t",
			Usage:       "Print a table instead of the report",
			Destination: &asTable,
		}, cli.BoolFlag{
			Name:        "urls-only",
			Usage:       "Print only the comma separated URLs",
			Destination: &urlsOnly,
		}, cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &verbose,
		},
	}

	app.Action = func(c *cli.Context) error {
		log.SetVerbose(verbose)

		ctx := context.Background()

		appIDs := []string(c.Args())
		if len(appIDs) == 0 {
			apps, err := config.GetApps(configPath, target)
			if err != nil {
				return err
			}
			appIDs = config.IDs(apps)
		}
		log.G(ctx).Debugf("Looking up %d apps on %s", len(appIDs), baseURL)

		client := splunkbase.NewClient(baseURL)

		if urlsOnly {
			fmt.Println(client.FetchMultiple(ctx, appIDs))
			return nil
		}

		applications := client.FetchAll(ctx, appIDs)
		if asTable {
			printer.Table(os.Stdout, applications)
		} else {
			printer.Report(os.Stdout, applications)
		}
		printer.EnvLine(os.Stdout, splunkbase.JoinURLs(applications))
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.L.Fatal(err)
	}
}
