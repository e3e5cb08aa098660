// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the service.
type Config struct {
	HTTPPort int
	GinMode  string

	Generation GenerationConfig

	// Per client IP on the design generation endpoints. 0 disables the limiter.
	GenerationRateLimit float64
	GenerationRateBurst int
	// Proxies allowed to set X-Forwarded-For. Empty means the peer address is
	// always the client IP.
	TrustedProxies []string

	AWS           AWSConfig
	DesignsTable  string
	PaymentsTable string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
	TestPayerUserID        string

	Temporal TemporalConfig
}

// GenerationConfig configures the remote 3D generation service client.
type GenerationConfig struct {
	BaseURL        string
	APIKey         string
	HTTPTimeout    time.Duration
	SubmitAttempts int
	SubmitBackoff  time.Duration
	PollAttempts   int
	PollDelay      time.Duration
	PollFactor     float64
	PollMaxDelay   time.Duration
}

// AWSConfig is local-friendly: DynamoDB Local ignores the static credentials
// but the SDK still requires some.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// TemporalConfig points the batch worker at a Temporal frontend.
type TemporalConfig struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

// Load reads configuration from environment variables.
// A missing TRIPO_API_KEY is not an error here: the generation client reports
// it per call so the rest of the API keeps serving.
func Load() (*Config, error) {
	port, err := intEnv("PORT", 8080)
	if err != nil {
		return nil, err
	}

	timeout, err := durationEnv("TRIPO_HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	submitAttempts, err := intEnv("GENERATION_SUBMIT_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}
	submitBackoff, err := durationEnv("GENERATION_SUBMIT_BACKOFF", 10*time.Second)
	if err != nil {
		return nil, err
	}
	pollAttempts, err := intEnv("GENERATION_POLL_ATTEMPTS", 100)
	if err != nil {
		return nil, err
	}
	pollDelay, err := durationEnv("GENERATION_POLL_DELAY", 5*time.Second)
	if err != nil {
		return nil, err
	}
	pollFactor, err := floatEnv("GENERATION_POLL_FACTOR", 1.5)
	if err != nil {
		return nil, err
	}
	pollMaxDelay, err := durationEnv("GENERATION_POLL_MAX_DELAY", time.Minute)
	if err != nil {
		return nil, err
	}

	rateLimit, err := floatEnv("GENERATION_RATE_LIMIT", 1)
	if err != nil {
		return nil, err
	}
	rateBurst, err := intEnv("GENERATION_RATE_BURST", 5)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort: port,
		GinMode:  os.Getenv("GIN_MODE"),
		Generation: GenerationConfig{
			BaseURL:        getenvDefault("TRIPO_BASE_URL", "https://api.tripo3d.ai/v2/openapi"),
			APIKey:         os.Getenv("TRIPO_API_KEY"),
			HTTPTimeout:    timeout,
			SubmitAttempts: submitAttempts,
			SubmitBackoff:  submitBackoff,
			PollAttempts:   pollAttempts,
			PollDelay:      pollDelay,
			PollFactor:     pollFactor,
			PollMaxDelay:   pollMaxDelay,
		},
		GenerationRateLimit:    rateLimit,
		GenerationRateBurst:    rateBurst,
		TrustedProxies:         listEnv("TRUSTED_PROXIES"),
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		DesignsTable:           getenvDefault("DESIGNS_TABLE", "customer_designs"),
		PaymentsTable:          getenvDefault("PAYMENTS_TABLE", "payments"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		TestPayerEmail:         os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		TestPayerUserID:        os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"),
		Temporal: TemporalConfig{
			HostPort:  getenvDefault("TEMPORAL_HOST_PORT", "localhost:7233"),
			Namespace: getenvDefault("TEMPORAL_NAMESPACE", "default"),
			TaskQueue: getenvDefault("TEMPORAL_TASK_QUEUE", "design-generation"),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// listEnv splits a comma separated variable, dropping empty items.
func listEnv(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on", "mock":
		return true
	}
	return false
}
