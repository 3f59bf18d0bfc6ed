package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/letmevibethatforyou/voicesearch"
	"github.com/letmevibethatforyou/voicesearch/dataset"
	"github.com/letmevibethatforyou/voicesearch/ranked"
	"github.com/letmevibethatforyou/voicesearch/skill"
	"github.com/urfave/cli/v2"
)

const defaultLimit = 10

func main() {
	app := &cli.App{
		Name:  "query",
		Usage: "Run a ranked search against a skill dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "Dataset to search (restaurants or nightlife)",
				Value:   skill.DomainRestaurants,
			},
			&cli.StringFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "Record field to search",
				Value:   "name",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "JSON or YAML dataset file to search instead of the embedded dataset",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Query string to search for; positional arg is a fallback",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of results to print",
				Value:   defaultLimit,
			},
		},
		Action: runAction,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func runAction(c *cli.Context) error {
	ctx := c.Context

	query := strings.TrimSpace(c.String("query"))
	if query == "" && c.NArg() > 0 {
		query = strings.TrimSpace(c.Args().First())
	}

	limit := c.Int("limit")
	if limit <= 0 {
		slog.WarnContext(ctx, "limit must be positive; falling back to default", "limit", limit, "default", defaultLimit)
		limit = defaultLimit
	}

	domainName := strings.TrimSpace(c.String("domain"))
	fieldName := strings.ToLower(strings.TrimSpace(c.String("field")))

	var records []voicesearch.Record
	var err error
	if path := c.String("file"); path != "" {
		records, err = dataset.LoadFile(path)
	} else {
		records, err = dataset.Embedded(domainName)
	}
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	var d *skill.Domain
	switch domainName {
	case skill.DomainRestaurants:
		d = skill.Restaurants(records)
	case skill.DomainNightlife:
		d = skill.Nightlife(records)
	default:
		return fmt.Errorf("unknown domain %q", domainName)
	}

	if err := dataset.Validate(records, d.Width); err != nil {
		return err
	}

	field, ok := d.Fields[fieldName]
	if !ok {
		return fmt.Errorf("unknown field %q for %s, expected one of %s", fieldName, d.Name, strings.Join(d.FieldNames(), ", "))
	}

	slog.InfoContext(ctx, "executing query",
		"domain", d.Name,
		"field", fieldName,
		"query", query,
		"limit", limit,
		"records", len(records),
	)

	matches, err := ranked.Rank(records, query, field)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return printResults(d, fieldName, query, matches, limit)
}

type item struct {
	Weight int               `json:"weight"`
	Record map[string]string `json:"record"`
}

func printResults(d *skill.Domain, field, query string, matches []ranked.Match, limit int) error {
	names := d.FieldNames()

	items := make([]item, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		record := make(map[string]string, len(names))
		for i, name := range names {
			record[name] = m.Record.Get(voicesearch.Field(i))
		}
		items = append(items, item{Weight: m.Weight, Record: record})
	}

	payload := struct {
		Domain string `json:"domain"`
		Field  string `json:"field"`
		Query  string `json:"query"`
		Total  int    `json:"total"`
		Items  []item `json:"items"`
	}{
		Domain: d.Name,
		Field:  field,
		Query:  query,
		Total:  len(matches),
		Items:  items,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
