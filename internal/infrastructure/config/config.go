package config

import (
	"log"
	"os"
	"strings"
	"time"

	"clinica_finanzas/internal/domain/entities"

	"github.com/spf13/cast"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

// Config is read once from the environment (.env is autoloaded by main).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORAGE_BACKEND: memory | dynamodb (default: memory)
//   - SEED_FILE: JSON snapshot path (default: embedded seed)
//   - SEED_LATENCY: simulated fetch latency, e.g. 300ms (default: 0)
//   - CLINIC_NAME, CLINIC_TAX_ID, CLINIC_ADDRESS, CLINIC_PHONE, CLINIC_EMAIL
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
type Config struct {
	Port           int
	StorageBackend string
	SeedFile       string
	SeedLatency    time.Duration
	Issuer         entities.InvoiceIssuer
	DynamoDB       DynamoDB
}

type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func Load() Config {
	cfg := Config{
		Port:           intEnv("PORT", 8080),
		StorageBackend: strings.ToLower(getenvDefault("STORAGE_BACKEND", BackendMemory)),
		SeedFile:       strings.TrimSpace(os.Getenv("SEED_FILE")),
		SeedLatency:    durationEnv("SEED_LATENCY", 0),
		Issuer: entities.InvoiceIssuer{
			Name:    getenvDefault("CLINIC_NAME", "Clínica San Rafael"),
			TaxID:   getenvDefault("CLINIC_TAX_ID", "CSR010101AB1"),
			Address: getenvDefault("CLINIC_ADDRESS", "Av. Reforma 123, Ciudad de México"),
			Phone:   getenvDefault("CLINIC_PHONE", "+52 55 5555 0100"),
			Email:   getenvDefault("CLINIC_EMAIL", "facturacion@clinicasanrafael.mx"),
		},
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}
	if cfg.StorageBackend != BackendMemory && cfg.StorageBackend != BackendDynamoDB {
		log.Printf("[config] unknown STORAGE_BACKEND=%q; using %s", cfg.StorageBackend, BackendMemory)
		cfg.StorageBackend = BackendMemory
	}
	return cfg
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := cast.ToIntE(raw)
	if err != nil || v <= 0 {
		log.Printf("[config] invalid %s=%q; using %d", key, raw, def)
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := cast.ToDurationE(raw)
	if err != nil || v < 0 {
		log.Printf("[config] invalid %s=%q; using %s", key, raw, def)
		return def
	}
	return v
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
