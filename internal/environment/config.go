// Package environment reads worker configuration from the process
// environment, with an optional .env file for local development.
package environment

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Transport names the submission source the worker listens on.
type Transport string

const (
	TransportNATS Transport = "nats"
	TransportSQS  Transport = "sqs"
)

type EnvConfig struct {
	// Transport selects how submissions arrive: "nats" or "sqs".
	Transport Transport

	NatsURL     string
	NatsSubject string

	SubmSqsUrl     string
	ResponseSqsUrl string
	AwsRegion      string

	OpenAIBaseUrl string
	OpenAIApiKey  string
	OpenAIModel   string

	// PythonBin overrides interpreter detection when set.
	PythonBin string

	// Concurrency caps simultaneously evaluated submissions.
	Concurrency int
}

// ReadEnvConfig loads config from the environment. A missing .env file
// is fine; explicit environment variables always win.
func ReadEnvConfig() (*EnvConfig, error) {
	_ = godotenv.Load()

	cfg := &EnvConfig{
		Transport:   Transport(getenv("TUTOR_TRANSPORT", string(TransportNATS))),
		NatsURL:     getenv("NATS_URL", "nats://localhost:4222"),
		NatsSubject: getenv("NATS_SUBM_SUBJECT", "tutor.submissions"),

		SubmSqsUrl:     os.Getenv("SUBM_SQS_URL"),
		ResponseSqsUrl: os.Getenv("RESPONSE_SQS_URL"),
		AwsRegion:      getenv("AWS_REGION", "eu-central-1"),

		OpenAIBaseUrl: os.Getenv("OPENAI_BASE_URL"),
		OpenAIApiKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getenv("OPENAI_MODEL", "gpt-4o-mini"),

		PythonBin: os.Getenv("PYTHON_BIN"),
	}

	concurrency := getenv("TUTOR_CONCURRENCY", "4")
	n, err := strconv.Atoi(concurrency)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid TUTOR_CONCURRENCY %q", concurrency)
	}
	cfg.Concurrency = n

	switch cfg.Transport {
	case TransportNATS, TransportSQS:
	default:
		return nil, fmt.Errorf("invalid TUTOR_TRANSPORT %q", cfg.Transport)
	}
	if cfg.Transport == TransportSQS && (cfg.SubmSqsUrl == "" || cfg.ResponseSqsUrl == "") {
		return nil, fmt.Errorf("sqs transport requires SUBM_SQS_URL and RESPONSE_SQS_URL")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
