package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "SEED_FILE", "SEED_LATENCY", "CLINIC_NAME", "DYNAMODB_ENDPOINT", "AWS_REGION"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Fatalf("expected memory backend, got %s", cfg.StorageBackend)
	}
	if cfg.SeedFile != "" || cfg.SeedLatency != 0 {
		t.Fatalf("unexpected seed config %+v", cfg)
	}
	if cfg.Issuer.Name == "" {
		t.Fatalf("expected default issuer name")
	}
	if cfg.DynamoDB.Region != "us-east-1" || cfg.DynamoDB.Endpoint != "" {
		t.Fatalf("unexpected dynamodb config %+v", cfg.DynamoDB)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "DynamoDB")
	t.Setenv("SEED_FILE", " /tmp/seed.json ")
	t.Setenv("SEED_LATENCY", "250ms")
	t.Setenv("CLINIC_NAME", "Clínica Norte")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Port)
	}
	if cfg.StorageBackend != BackendDynamoDB {
		t.Fatalf("expected dynamodb backend, got %s", cfg.StorageBackend)
	}
	if cfg.SeedFile != "/tmp/seed.json" || cfg.SeedLatency != 250*time.Millisecond {
		t.Fatalf("unexpected seed config %+v", cfg)
	}
	if cfg.Issuer.Name != "Clínica Norte" || cfg.DynamoDB.Endpoint != "http://localhost:8000" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("SEED_LATENCY", "soon")

	cfg := Load()
	if cfg.Port != 8080 || cfg.StorageBackend != BackendMemory || cfg.SeedLatency != 0 {
		t.Fatalf("expected fallbacks, got %+v", cfg)
	}
}
