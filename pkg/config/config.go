// Package config loads process settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvOutputDir   = "RAYTRACER_OUTPUT_DIR"
	EnvWorkers     = "RAYTRACER_WORKERS"
	EnvS3Bucket    = "RAYTRACER_S3_BUCKET"
	EnvS3Region    = "RAYTRACER_S3_REGION"
	EnvS3Endpoint  = "RAYTRACER_S3_ENDPOINT"
	EnvS3AccessKey = "RAYTRACER_S3_ACCESS_KEY"
	EnvS3SecretKey = "RAYTRACER_S3_SECRET_KEY"
	EnvS3Prefix    = "RAYTRACER_S3_PREFIX"
)

// Config holds settings that are not per-render
type Config struct {
	OutputDir string
	Workers   int // 0 means one per CPU

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string
}

// Load reads envFile into the process environment (variables already set win)
// and builds a Config from it. A missing envFile is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment
func FromEnv() (*Config, error) {
	workers, err := getEnvInt(EnvWorkers, 0)
	if err != nil {
		return nil, err
	}
	if workers < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", EnvWorkers, workers)
	}

	return &Config{
		OutputDir:   getEnv(EnvOutputDir, "output"),
		Workers:     workers,
		S3Bucket:    getEnv(EnvS3Bucket, ""),
		S3Region:    getEnv(EnvS3Region, "us-east-1"),
		S3Endpoint:  getEnv(EnvS3Endpoint, ""),
		S3AccessKey: getEnv(EnvS3AccessKey, ""),
		S3SecretKey: getEnv(EnvS3SecretKey, ""),
		S3Prefix:    getEnv(EnvS3Prefix, ""),
	}, nil
}

// S3Enabled reports whether a bucket is configured
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// getEnv returns the value of key, or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
