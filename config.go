package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.S().Warnf("⚠️  %s=%q is not a valid duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func errMissingEnv(key string) error {
	return fmt.Errorf("%s environment variable not set", key)
}

func errUnknownBackend(name string) error {
	return fmt.Errorf("unknown STORE_BACKEND %q (want file, sqlite, postgres or r2)", name)
}
