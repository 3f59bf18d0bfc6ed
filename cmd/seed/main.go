package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/letmevibethatforyou/voicesearch"
	"github.com/letmevibethatforyou/voicesearch/dataset"
	"github.com/letmevibethatforyou/voicesearch/skill"
	"github.com/urfave/cli/v2"
)

func runAction(c *cli.Context) error {
	ctx := c.Context
	tableName := c.String("table-name")
	domain := c.String("domain")
	path := c.String("file")

	slog.InfoContext(ctx, "Starting dataset seed",
		"table", tableName,
		"domain", domain,
		"file", path,
	)

	var width int
	switch domain {
	case skill.DomainRestaurants:
		width = skill.Restaurants(nil).Width
	case skill.DomainNightlife:
		width = skill.Nightlife(nil).Width
	default:
		return fmt.Errorf("unknown domain %q", domain)
	}

	var records []voicesearch.Record
	var err error
	if path != "" {
		records, err = dataset.LoadFile(path)
	} else {
		records, err = dataset.Embedded(domain)
	}
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := dataset.Validate(records, width); err != nil {
		return err
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg)

	if err := dataset.NewTable(tableName).Write(ctx, client, domain, records); err != nil {
		return fmt.Errorf("failed to seed %s: %w", domain, err)
	}

	slog.InfoContext(ctx, "Successfully seeded dataset", "domain", domain, "count", len(records))
	return nil
}

func main() {
	// Configure JSON logging for AWS environments
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" || os.Getenv("AWS_REGION") != "" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Write a skill dataset into DynamoDB",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "table-name",
				Aliases:  []string{"t"},
				Usage:    "DynamoDB table name",
				EnvVars:  []string{"TABLE_NAME"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "domain",
				Aliases:  []string{"d"},
				Usage:    "Dataset to write (restaurants or nightlife)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "JSON or YAML dataset file; the embedded dataset is written when empty",
			},
		},
		Action: runAction,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
