// Package config loads helpgen settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/broady/helpgen/client"
	"github.com/broady/helpgen/sink"
)

// Environment variable names.
const (
	EnvBaseURL     = "HELPGEN_BASE_URL"
	EnvPassword    = "HELPGEN_PASSWORD"
	EnvInsecureTLS = "HELPGEN_INSECURE_TLS"
	EnvConcurrency = "HELPGEN_CONCURRENCY"
	EnvTimeout     = "HELPGEN_TIMEOUT"
	EnvNamespace   = "HELPGEN_NAMESPACE"

	EnvS3Endpoint  = "HELPGEN_S3_ENDPOINT"
	EnvS3Region    = "HELPGEN_S3_REGION"
	EnvS3AccessKey = "HELPGEN_S3_ACCESS_KEY"
	EnvS3SecretKey = "HELPGEN_S3_SECRET_KEY"
	EnvS3Bucket    = "HELPGEN_S3_BUCKET"
	EnvS3UseSSL    = "HELPGEN_S3_USE_SSL"
	EnvS3Prefix    = "HELPGEN_S3_PREFIX"
)

type Config struct {
	BaseURL     string `validate:"required,http_url"`
	Password    string
	InsecureTLS bool
	Concurrency int `validate:"min=1,max=64"`
	Timeout     time.Duration
	Namespace   string `validate:"omitempty,alphanum"`
	S3          S3Config
}

type S3Config struct {
	Endpoint  string `validate:"omitempty,hostname_port"`
	Region    string
	AccessKey string `validate:"required_with=Endpoint"`
	SecretKey string `validate:"required_with=Endpoint"`
	Bucket    string `validate:"required_with=Endpoint"`
	UseSSL    bool
	Prefix    string
}

// Enabled reports whether artifacts should also be uploaded.
func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

// Sink returns the sink configuration for the bucket.
func (c S3Config) Sink() sink.S3Config {
	return sink.S3Config{
		Endpoint:  c.Endpoint,
		Region:    c.Region,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Bucket:    c.Bucket,
		UseSSL:    c.UseSSL,
		Prefix:    c.Prefix,
	}
}

// ClientOptions returns the client configuration.
func (c *Config) ClientOptions(logger *slog.Logger) client.Options {
	return client.Options{
		BaseURL:     c.BaseURL,
		Password:    c.Password,
		InsecureTLS: c.InsecureTLS,
		Concurrency: c.Concurrency,
		Timeout:     c.Timeout,
		Logger:      logger,
	}
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		BaseURL:     client.DefaultBaseURL,
		InsecureTLS: true,
		Concurrency: client.DefaultConcurrency,
		Timeout:     30 * time.Second,
		S3:          S3Config{Region: "us-east-1", UseSSL: true},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the given .env files (".env" when none are given, ignored when
// absent), then the process environment, and validates the result.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	cfg := Default()
	if err := cfg.apply(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvBaseURL); ok {
		c.BaseURL = v
	}
	if v, ok := get(EnvPassword); ok {
		c.Password = v
	}
	if v, ok := get(EnvNamespace); ok {
		c.Namespace = v
	}
	if err := parseEnv(get, EnvInsecureTLS, strconv.ParseBool, &c.InsecureTLS); err != nil {
		return err
	}
	if err := parseEnv(get, EnvConcurrency, strconv.Atoi, &c.Concurrency); err != nil {
		return err
	}
	if err := parseEnv(get, EnvTimeout, time.ParseDuration, &c.Timeout); err != nil {
		return err
	}

	if v, ok := get(EnvS3Endpoint); ok {
		c.S3.Endpoint = v
	}
	if v, ok := get(EnvS3Region); ok {
		c.S3.Region = v
	}
	if v, ok := get(EnvS3AccessKey); ok {
		c.S3.AccessKey = v
	}
	if v, ok := get(EnvS3SecretKey); ok {
		c.S3.SecretKey = v
	}
	if v, ok := get(EnvS3Bucket); ok {
		c.S3.Bucket = v
	}
	if v, ok := get(EnvS3Prefix); ok {
		c.S3.Prefix = v
	}
	return parseEnv(get, EnvS3UseSSL, strconv.ParseBool, &c.S3.UseSSL)
}

func parseEnv[T any](get func(string) (string, bool), key string, parse func(string) (T, error), dst *T) error {
	raw, ok := get(key)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}
