package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"agenda_tecnica/internal/domain/entities"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMongoDB  = "mongodb"
)

var (
	ErrMissingConnectionString = errors.New("missing connection string")
	ErrUnknownStoreDriver      = errors.New("unknown store driver")
)

type Config struct {
	ServerPort string
	Timezone   string
	Location   *time.Location

	StoreDriver string

	DynamoEndpoint string
	AWSRegion      string
	ActividadTable string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	RedisURL     string
	ListCacheTTL time.Duration

	ReportsBucket string
	ReportsURLTTL time.Duration

	Tecnicos    []string
	Agentes     []string
	CORSOrigins []string
}

// Load reads the process environment. It fails when the selected store has
// no connection settings, so the server never starts against nothing.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Timezone:        getEnv("APP_TIMEZONE", entities.DefaultTimezone),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverDynamoDB)),
		DynamoEndpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		ActividadTable:  getEnv("ACTIVIDADES_TABLE", "actividades"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "agenda"),
		MongoCollection: getEnv("MONGO_COLLECTION", "actividades"),
		RedisURL:        os.Getenv("REDIS_URL"),
		ReportsBucket:   os.Getenv("REPORTS_BUCKET"),
		Tecnicos:        splitList(getEnv("TECNICOS", strings.Join(entities.DefaultTecnicos, ","))),
		Agentes:         splitList(getEnv("AGENTES", strings.Join(entities.DefaultAgentes, ","))),
		CORSOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	cfg.Location = entities.LoadLocation(cfg.Timezone)

	var err error
	if cfg.ListCacheTTL, err = getDuration("LIST_CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReportsURLTTL, err = getDuration("REPORTS_URL_TTL", 15*time.Minute); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case DriverDynamoDB:
		if cfg.DynamoEndpoint == "" && cfg.AWSRegion == "" {
			return nil, fmt.Errorf("%w: set DYNAMODB_ENDPOINT or AWS_REGION", ErrMissingConnectionString)
		}
	case DriverMongoDB:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("%w: set MONGO_URI", ErrMissingConnectionString)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreDriver, cfg.StoreDriver)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func (c *Config) SharingEnabled() bool {
	return c.ReportsBucket != ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
