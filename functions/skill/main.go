package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/letmevibethatforyou/voicesearch"
	"github.com/letmevibethatforyou/voicesearch/dataset"
	"github.com/letmevibethatforyou/voicesearch/internal/appid"
	"github.com/letmevibethatforyou/voicesearch/skill"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "belfast-skill",
		Usage: "Voice skill answering restaurant and nightlife questions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Environment name for AWS Secrets Manager (skill id read from {env}/alexa)",
				EnvVars: []string{"ENV", "ENVIRONMENT"},
			},
			&cli.StringFlag{
				Name:    "skill-id",
				Usage:   "Expected skill application id; empty disables the check",
				EnvVars: []string{"ALEXA_SKILL_ID"},
			},
			&cli.StringFlag{
				Name:    "skill-id-secret-arn",
				Usage:   "ARN of AWS Secrets Manager secret containing the skill id",
				EnvVars: []string{"ALEXA_SKILL_ID_SECRET_ARN"},
			},
			&cli.StringFlag{
				Name:    "table-name",
				Usage:   "DynamoDB table holding the datasets; embedded datasets are used when empty",
				EnvVars: []string{"TABLE_NAME"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Log request and response envelopes",
				EnvVars: []string{"SKILL_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			configureLogging(c.Bool("debug"))
			return nil
		},
		Action: runAction,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func configureLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" || os.Getenv("AWS_REGION") != "" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

func runAction(c *cli.Context) error {
	ctx := c.Context
	env := c.String("env")
	tableName := c.String("table-name")
	secretArn := c.String("skill-id-secret-arn")
	staticID := c.String("skill-id")

	slog.InfoContext(ctx, "Starting skill", "environment", env, "table", tableName)

	var (
		cfg    aws.Config
		cfgErr error
		loaded bool
	)
	awsConfig := func() (aws.Config, error) {
		if !loaded {
			cfg, cfgErr = config.LoadDefaultConfig(ctx)
			loaded = true
		}
		return cfg, cfgErr
	}

	restaurants, nightlife, err := loadDatasets(ctx, tableName, awsConfig)
	if err != nil {
		return err
	}

	var fetchSkillID appid.FetchSkillID
	switch {
	case secretArn != "":
		slog.InfoContext(ctx, "Using AWS Secrets Manager for skill id", "secret_arn", secretArn)
		cfg, err := awsConfig()
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}
		fetchSkillID = appid.AWSSecretsFromARN(ctx, secretsmanager.NewFromConfig(cfg), secretArn)
	case env != "":
		slog.InfoContext(ctx, "Using AWS Secrets Manager for skill id", "environment", env)
		cfg, err := awsConfig()
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}
		fetchSkillID = appid.AWSSecrets(ctx, secretsmanager.NewFromConfig(cfg), env)
	case staticID != "":
		slog.InfoContext(ctx, "Using static skill id from flags")
		fetchSkillID = appid.Static(staticID)
	default:
		fetchSkillID = appid.Env()
	}

	restaurantDomain := skill.Restaurants(restaurants)
	nightlifeDomain := skill.Nightlife(nightlife)
	if err := dataset.Validate(restaurants, restaurantDomain.Width); err != nil {
		return fmt.Errorf("invalid restaurants dataset: %w", err)
	}
	if err := dataset.Validate(nightlife, nightlifeDomain.Width); err != nil {
		return fmt.Errorf("invalid nightlife dataset: %w", err)
	}

	s := skill.New(
		skill.NewTable(restaurantDomain, nightlifeDomain),
		skill.WithVerifier(appid.NewVerifier(fetchSkillID)),
	)

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		slog.InfoContext(ctx, "Running in Lambda environment")
		lambda.Start(s.Handle)
	} else {
		slog.InfoContext(ctx, "Function cannot run outside of AWS Lambda environment")
	}

	return nil
}

func loadDatasets(ctx context.Context, tableName string, awsConfig func() (aws.Config, error)) (restaurants, nightlife []voicesearch.Record, err error) {
	load := func(domain string) ([]voicesearch.Record, error) {
		return dataset.Embedded(domain)
	}

	if tableName != "" {
		cfg, err := awsConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(cfg)
		table := dataset.NewTable(tableName)
		load = func(domain string) ([]voicesearch.Record, error) {
			return table.Load(ctx, client, domain)
		}
	}

	if restaurants, err = load(skill.DomainRestaurants); err != nil {
		return nil, nil, err
	}
	if nightlife, err = load(skill.DomainNightlife); err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "Datasets loaded",
		"restaurants", len(restaurants),
		"nightlife", len(nightlife),
	)
	return restaurants, nightlife, nil
}
