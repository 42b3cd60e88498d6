package main

import (
	"context"
	"os"

	"github.com/gobuffalo/envy"
	"github.com/urfave/cli"

	"github.com/splunkbase-bot/splunkbase-urls/log"
	"github.com/splunkbase-bot/splunkbase-urls/models"
	"github.com/splunkbase-bot/splunkbase-urls/printer"
	"github.com/splunkbase-bot/splunkbase-urls/splunkbase"
)

func main() {
	var verbose bool
	var appID string
	var baseURL string

	app := cli.NewApp()
	app.Name = "splunkbase-app"
	app.Usage = "Look up a single Splunkbase app"
	app.Version = "0.0.1"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "app, a",
			Usage:       "Splunkbase app id",
			Destination: &appID,
			Required:    true,
		}, cli.StringFlag{
			Name:        "base-url",
			Usage:       "Splunkbase base URL",
			Value:       envy.Get("SPLUNKBASE_URL", splunkbase.DefaultBaseURL),
			Destination: &baseURL,
		}, cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &verbose,
		},
	}

	app.Action = func(c *cli.Context) error {
		ctx := context.Background()

		log.SetVerbose(verbose)

		client := splunkbase.NewClient(baseURL)
		application := client.FetchAppInfo(ctx, appID)
		if !application.HasDownloadURL() {
			log.G(ctx).Errorf("No download URL for: %s", appID)
		}

		printer.Table(os.Stdout, []models.AppInfo{application})
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.L.Fatal(err)
	}
}
