package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/chazkiker2/googlesheets"
	"github.com/chazkiker2/googlesheets/auth"
)

type Config struct {
	SpreadsheetID string `split_words:"true" required:"true"`
	Credentials   string `split_words:"true" default:"client_secret.json"`
	TokenCache    string `split_words:"true" default:"tokencache.json"`
}

func main() {
	var c Config
	if err := envconfig.Process("gsheets", &c); err != nil {
		log.Fatal(err)
	}

	app := &cli.App{
		Name:  "gsheets",
		Usage: "Read and write ranges of a Google spreadsheet",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print the values in a range",
				ArgsUsage: "RANGE",
				Action: func(ctx *cli.Context) error {
					s, err := service(ctx.Context, &c)
					if err != nil {
						return err
					}
					vr, err := s.Values(ctx.Context, rangeArg(ctx))
					if err != nil {
						return err
					}
					for _, row := range vr.Values {
						fmt.Println(row)
					}
					return nil
				},
			},
			{
				Name:      "append",
				Usage:     "Append a row of cells under the existing data",
				ArgsUsage: "CELL...",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() == 0 {
						return errors.New("append needs at least one cell value")
					}
					s, err := service(ctx.Context, &c)
					if err != nil {
						return err
					}
					res, err := s.Append(ctx.Context, ctx.Args().Slice())
					if err != nil {
						return err
					}
					if res.Updates != nil {
						log.Println(res.Updates)
					}
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Write a row of cells starting at a range",
				ArgsUsage: "RANGE CELL...",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() < 2 {
						return errors.New("update needs a range and at least one cell value")
					}
					s, err := service(ctx.Context, &c)
					if err != nil {
						return err
					}
					res, err := s.UpdateValues(ctx.Context, ctx.Args().First(), [][]string{ctx.Args().Tail()})
					if err != nil {
						return err
					}
					log.Println(res)
					return nil
				},
			},
			{
				Name:      "clear",
				Usage:     "Clear the values in a range (or a whole sheet by title)",
				ArgsUsage: "RANGE",
				Action: func(ctx *cli.Context) error {
					s, err := service(ctx.Context, &c)
					if err != nil {
						return err
					}
					res, err := s.Clear(ctx.Context, rangeArg(ctx))
					if err != nil {
						return err
					}
					log.Printf("cleared %s\n", res.ClearedRange)
					return nil
				},
			},
			{
				Name:  "url",
				Usage: "Print the browser link to the spreadsheet",
				Action: func(ctx *cli.Context) error {
					fmt.Println(googlesheets.New(nil, c.SpreadsheetID).URL())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

func rangeArg(ctx *cli.Context) string {
	if ctx.NArg() > 0 {
		return ctx.Args().First()
	}
	return "Sheet1"
}

func service(ctx context.Context, c *Config) (*googlesheets.Service, error) {
	client, err := auth.Client(ctx, c.Credentials, c.TokenCache, googlesheets.Scope)
	if err != nil {
		return nil, err
	}
	return googlesheets.New(client, c.SpreadsheetID), nil
}
