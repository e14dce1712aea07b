package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

var allKeys = []string{
	EnvBaseURL, EnvPassword, EnvInsecureTLS, EnvConcurrency, EnvTimeout, EnvNamespace,
	EnvS3Endpoint, EnvS3Region, EnvS3AccessKey, EnvS3SecretKey, EnvS3Bucket, EnvS3UseSSL, EnvS3Prefix,
}

// clearEnv unsets every variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if cfg.BaseURL != want.BaseURL || cfg.Concurrency != want.Concurrency || !cfg.InsecureTLS {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
	if cfg.S3.Enabled() {
		t.Error("S3 enabled without an endpoint")
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvBaseURL, "https://127.0.0.1:53001")
	t.Setenv(EnvPassword, "hunter2")
	t.Setenv(EnvInsecureTLS, "false")
	t.Setenv(EnvConcurrency, "4")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvNamespace, "LCU")
	t.Setenv(EnvS3Endpoint, "localhost:9000")
	t.Setenv(EnvS3AccessKey, "key")
	t.Setenv(EnvS3SecretKey, "secret")
	t.Setenv(EnvS3Bucket, "lcu-schemas")
	t.Setenv(EnvS3UseSSL, "false")
	t.Setenv(EnvS3Prefix, "nightly")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://127.0.0.1:53001" || cfg.Password != "hunter2" || cfg.InsecureTLS {
		t.Errorf("unexpected connection settings: %+v", cfg)
	}
	if cfg.Concurrency != 4 || cfg.Timeout != 5*time.Second || cfg.Namespace != "LCU" {
		t.Errorf("unexpected run settings: %+v", cfg)
	}
	if !cfg.S3.Enabled() {
		t.Fatal("S3 not enabled")
	}
	s3 := cfg.S3.Sink()
	if s3.Bucket != "lcu-schemas" || s3.Region != "us-east-1" || s3.UseSSL || s3.Prefix != "nightly" {
		t.Errorf("unexpected sink config: %+v", s3)
	}

	opts := cfg.ClientOptions(nil)
	if opts.BaseURL != cfg.BaseURL || opts.Concurrency != 4 || opts.Password != "hunter2" {
		t.Errorf("unexpected client options: %+v", opts)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "helpgen.env")
	content := "HELPGEN_NAMESPACE=FromFile\nHELPGEN_CONCURRENCY=2\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConcurrency, "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Namespace != "FromFile" {
		t.Errorf("Namespace = %q, want FromFile", cfg.Namespace)
	}
	if cfg.Concurrency != 3 {
		t.Errorf("Concurrency = %d, want 3 (environment wins over file)", cfg.Concurrency)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load() with a missing explicit file should fail")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		errMsg     string
		validation bool
	}{
		{name: "unparsable concurrency", env: map[string]string{EnvConcurrency: "many"}, errMsg: EnvConcurrency},
		{name: "unparsable bool", env: map[string]string{EnvInsecureTLS: "maybe"}, errMsg: EnvInsecureTLS},
		{name: "unparsable timeout", env: map[string]string{EnvTimeout: "soon"}, errMsg: EnvTimeout},
		{name: "zero concurrency", env: map[string]string{EnvConcurrency: "0"}, errMsg: "Concurrency", validation: true},
		{name: "bad url", env: map[string]string{EnvBaseURL: "localhost"}, errMsg: "BaseURL", validation: true},
		{name: "bad namespace", env: map[string]string{EnvNamespace: "LCU Types"}, errMsg: "Namespace", validation: true},
		{name: "bucket missing", env: map[string]string{EnvS3Endpoint: "localhost:9000", EnvS3AccessKey: "k", EnvS3SecretKey: "s"}, errMsg: "Bucket", validation: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Load() error = %v, want error containing %q", err, tt.errMsg)
			}
			var verrs validator.ValidationErrors
			if got := errors.As(err, &verrs); got != tt.validation {
				t.Errorf("errors.As(ValidationErrors) = %v, want %v", got, tt.validation)
			}
		})
	}
}
