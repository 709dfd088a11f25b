package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/solidusers/prod/"

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Environment      string
	Port             int
	StoreDriver      string
	SQLitePath       string
	LogLevel         log.Lvl
	MachineID        int64
	BodyLimit        string
	AWSRegion        string
	SnapshotBucket   string
	SnapshotInterval time.Duration
}

func (c *Config) Production() bool {
	return c.Environment == "production"
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load fills the process environment (SSM in production, .env otherwise)
// and reads the service configuration from it.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx, getString("AWS_REGION", "us-east-2")); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:      getString("GO_ENV", "development"),
		Port:             getInt("PORT", 3333),
		StoreDriver:      strings.ToLower(getString("STORE_DRIVER", StoreMemory)),
		SQLitePath:       getString("SQLITE_PATH", "database.db"),
		LogLevel:         parseLevel(getString("LOG_LEVEL", "info")),
		MachineID:        int64(getInt("MACHINE_ID", 1)),
		BodyLimit:        getString("BODY_LIMIT", "1M"),
		AWSRegion:        getString("AWS_REGION", "us-east-2"),
		SnapshotBucket:   getString("SNAPSHOT_BUCKET", ""),
		SnapshotInterval: getDuration("SNAPSHOT_INTERVAL", 15*time.Minute),
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q, expected %q or %q", cfg.StoreDriver, StoreMemory, StoreSQLite)
	}
	return cfg, nil
}

func loadProdEnv(ctx context.Context, region string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(envVarsPrefix)
	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := (*param.Name)[prefixLength:]
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
	return nil
}

func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := getString(key, "")
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("invalid value for %s: %v", key, err)
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := getString(key, "")
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log.Warnf("invalid value for %s: %q", key, value)
		return fallback
	}
	return parsed
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
