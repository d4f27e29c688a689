package config

import (
	"os"
	"time"
)

// Default values used when no other source provides one.
const (
	DefaultAPIBaseURL     = "http://localhost:8081/api"
	DefaultWSBaseURL      = "ws://localhost:8081"
	DefaultGoogleClientID = "your-google-client-id"
	DefaultRazorpayKeyID  = "your-razorpay-key-id"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDatabasePath   = "learnhub.db"
	DefaultLogLevel       = "info"
)

// Config holds runtime settings for the LearnHub client.
//
// The env names of the first four fields match the variables the web
// frontend is deployed with, so one .env file serves both. OTelEndpoint is an
// OTLP/HTTP collector URL; tracing stays off while it is empty.
type Config struct {
	APIBaseURL     string        `env:"NEXT_PUBLIC_API_URL"`
	WSBaseURL      string        `env:"NEXT_PUBLIC_WS_URL"`
	GoogleClientID string        `env:"NEXT_PUBLIC_GOOGLE_CLIENT_ID"`
	RazorpayKeyID  string        `env:"NEXT_PUBLIC_RAZORPAY_KEY_ID"`
	RequestTimeout time.Duration `env:"LEARNHUB_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"LEARNHUB_DB"`
	LogLevel       string        `env:"LEARNHUB_LOG_LEVEL"`
	OTelEndpoint   string        `env:"LEARNHUB_OTEL_ENDPOINT"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.WSBaseURL = DefaultWSBaseURL
	c.GoogleClientID = DefaultGoogleClientID
	c.RazorpayKeyID = DefaultRazorpayKeyID
	c.RequestTimeout = DefaultRequestTimeout
	c.DatabasePath = DefaultDatabasePath
	c.LogLevel = DefaultLogLevel
}

// Load builds a Config from defaults, dotenv, environment, JSON and flags,
// in that order. args are the command-line arguments without the program
// name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on malformed input, which is
// what the CLI entrypoint wants at startup.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
