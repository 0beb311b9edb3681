package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort             = 8080
	defaultRegion           = "us-east-1"
	defaultLogLevel         = "info"
	defaultMaxEvidenceBytes = 10 << 20
)

// Config is read once at startup from the environment (and .env through
// godotenv/autoload in main).
type Config struct {
	Port     int
	LogLevel string
	GinMode  string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string
	S3UsePathStyle     bool

	EvidenceBucket      string
	EvidenceStorageMock bool
	MaxEvidenceBytes    int64

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

func Load() (Config, error) {
	port, err := intFromEnv("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	maxEvidence, err := intFromEnv("EVIDENCE_MAX_BYTES", defaultMaxEvidenceBytes)
	if err != nil {
		return Config{}, err
	}
	if maxEvidence <= 0 {
		return Config{}, fmt.Errorf("EVIDENCE_MAX_BYTES must be positive, got %d", maxEvidence)
	}

	return Config{
		Port:     port,
		LogLevel: getenvDefault("LOG_LEVEL", defaultLogLevel),
		GinMode:  os.Getenv("GIN_MODE"),

		AWSRegion:          getenvDefault("AWS_REGION", defaultRegion),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		S3Endpoint:         strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3UsePathStyle:     isEnabled(os.Getenv("S3_USE_PATH_STYLE")),

		EvidenceBucket:      strings.TrimSpace(os.Getenv("EVIDENCE_BUCKET")),
		EvidenceStorageMock: isEnabled(os.Getenv("EVIDENCE_STORAGE_MOCK")),
		MaxEvidenceBytes:    int64(maxEvidence),

		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isEnabled(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isEnabled(os.Getenv("MERCADOPAGO_MOCK")),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
