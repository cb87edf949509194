package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvOutputDir, EnvWorkers, EnvS3Bucket, EnvS3Region,
		EnvS3Endpoint, EnvS3AccessKey, EnvS3SecretKey, EnvS3Prefix,
	} {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Expected missing .env to be ignored, got %v", err)
	}
	if cfg.OutputDir != "output" || cfg.Workers != 0 || cfg.S3Region != "us-east-1" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.S3Enabled() {
		t.Error("Expected S3 disabled without a bucket")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	contents := "RAYTRACER_OUTPUT_DIR=renders\n" +
		"RAYTRACER_WORKERS=3\n" +
		"RAYTRACER_S3_BUCKET=frames\n" +
		"RAYTRACER_S3_PREFIX=nightly\n"
	if err := os.WriteFile(envFile, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	// Variables already in the environment take precedence
	t.Setenv(EnvWorkers, "5")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("Expected output dir from file, got %q", cfg.OutputDir)
	}
	if cfg.Workers != 5 {
		t.Errorf("Expected environment to override file, got %d workers", cfg.Workers)
	}
	if !cfg.S3Enabled() || cfg.S3Bucket != "frames" || cfg.S3Prefix != "nightly" {
		t.Errorf("Unexpected S3 settings %+v", cfg)
	}
}

func TestFromEnv_InvalidWorkers(t *testing.T) {
	clearEnv(t)

	for _, value := range []string{"many", "-2"} {
		t.Setenv(EnvWorkers, value)
		if _, err := FromEnv(); err == nil {
			t.Errorf("Expected error for %s=%q", EnvWorkers, value)
		}
	}
}
