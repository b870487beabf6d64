package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Known deployment environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config stores service settings.
type Config struct {
	Port      int
	Env       string
	LogLevel  string
	Mongo     Mongo
	Auth      Auth
	Seed      Seed
	RateLimit RateLimit
	Pprof     Pprof
	Kafka     Kafka
}

// Mongo holds document database settings.
type Mongo struct {
	URI      string
	Database string
}

// Auth holds token and cookie settings.
type Auth struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieSecure bool
}

// Seed holds the development owner bootstrap settings.
type Seed struct {
	Secret        string
	OwnerEmail    string
	OwnerPassword string
	OwnerName     string
}

// RateLimit holds per-route fixed window limits and the optional global token bucket.
type RateLimit struct {
	CreatePerMinute int
	UpdatePerMinute int
	SweepInterval   time.Duration

	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof holds the debug listener settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Kafka holds the tracking events consumer settings.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// IsDevelopment reports whether development-only endpoints may be served.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	loadDotEnv()

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Env, "env", cfg.Env, "deployment environment (development, production, test)")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pflag.StringVar(&cfg.Mongo.URI, "mongo-uri", cfg.Mongo.URI, "MongoDB connection string")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMongo reads only the database settings from .env and the environment,
// for tools that parse their own flags.
func LoadMongo() Mongo {
	loadDotEnv()
	return Mongo{
		URI:      envString("MONGODB_URI", defaultMongo.URI),
		Database: envString("MONGODB_DB_NAME", defaultMongo.Database),
	}
}

func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:      defaultPort,
		Env:       envString("APP_ENV", envString("NODE_ENV", defaultEnv)),
		LogLevel:  envString("LOG_LEVEL", "info"),
		Mongo:     defaultMongo,
		Auth:      defaultAuth,
		Seed:      defaultSeed,
		RateLimit: defaultRateLimit,
		Pprof:     defaultPprof,
	}
	var err error

	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}

	cfg.Mongo.URI = envString("MONGODB_URI", cfg.Mongo.URI)
	cfg.Mongo.Database = envString("MONGODB_DB_NAME", cfg.Mongo.Database)

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.TokenTTL, err = envDuration("AUTH_TOKEN_TTL", cfg.Auth.TokenTTL); err != nil {
		return nil, err
	}
	if cfg.Auth.CookieSecure, err = envBool("AUTH_COOKIE_SECURE", cfg.Env == EnvProduction); err != nil {
		return nil, err
	}

	cfg.Seed.Secret = os.Getenv("SEED_SECRET")
	cfg.Seed.OwnerEmail = envString("SEED_OWNER_EMAIL", cfg.Seed.OwnerEmail)
	cfg.Seed.OwnerPassword = envString("SEED_OWNER_PASSWORD", cfg.Seed.OwnerPassword)
	cfg.Seed.OwnerName = envString("SEED_OWNER_NAME", cfg.Seed.OwnerName)

	rl := &cfg.RateLimit
	if rl.CreatePerMinute, err = envInt("RATE_LIMIT_CREATE_PER_MINUTE", rl.CreatePerMinute); err != nil {
		return nil, err
	}
	if rl.UpdatePerMinute, err = envInt("RATE_LIMIT_UPDATE_PER_MINUTE", rl.UpdatePerMinute); err != nil {
		return nil, err
	}
	if rl.SweepInterval, err = envDuration("RATE_LIMIT_SWEEP_INTERVAL", rl.SweepInterval); err != nil {
		return nil, err
	}
	if rl.Enabled, err = envBool("RATE_LIMIT_ENABLED", rl.Enabled); err != nil {
		return nil, err
	}
	if rl.Rate, err = envFloat("RATE_LIMIT_RPS", rl.Rate); err != nil {
		return nil, err
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return nil, err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return nil, err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return nil, err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return nil, err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = os.Getenv("PPROF_USER")
	cfg.Pprof.Pass = os.Getenv("PPROF_PASS")

	cfg.Kafka.Brokers = envList("KAFKA_BROKERS")
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", "parcels-tracking")
	cfg.Kafka.Topic = os.Getenv("KAFKA_TRACKING_TOPIC")

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("invalid env: %q", c.Env)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid AUTH_TOKEN_TTL: %s", c.Auth.TokenTTL)
	}
	if strings.TrimSpace(c.Mongo.URI) == "" || strings.TrimSpace(c.Mongo.Database) == "" {
		return errors.New("mongo uri and database are required")
	}
	if c.RateLimit.CreatePerMinute <= 0 || c.RateLimit.UpdatePerMinute <= 0 {
		return errors.New("rate limits must be positive")
	}
	if c.RateLimit.SweepInterval <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_SWEEP_INTERVAL: %s", c.RateLimit.SweepInterval)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
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

func envList(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
