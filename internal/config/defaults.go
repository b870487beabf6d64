package config

import "time"

const defaultPort = 8080

const defaultEnv = EnvProduction

var defaultMongo = Mongo{
	URI:      "mongodb://127.0.0.1:27017",
	Database: "fastkart",
}

var defaultAuth = Auth{
	TokenTTL: 7 * 24 * time.Hour,
}

var defaultSeed = Seed{
	OwnerEmail:    "owner@example.com",
	OwnerPassword: "changeme123",
	OwnerName:     "Owner",
}

var defaultRateLimit = RateLimit{
	CreatePerMinute: 20,
	UpdatePerMinute: 30,
	SweepInterval:   time.Minute,
	Enabled:         false,
	Rate:            10,
	Burst:           20,
	TTL:             10 * time.Minute,
	MaxBuckets:      10000,
}

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultMongo returns the default database settings.
func DefaultMongo() Mongo {
	return defaultMongo
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
