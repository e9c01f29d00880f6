package environment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEnvConfigDefaults(t *testing.T) {
	cfg, err := ReadEnvConfig()
	require.NoError(t, err)

	require.Equal(t, TransportNATS, cfg.Transport)
	require.Equal(t, "nats://localhost:4222", cfg.NatsURL)
	require.Equal(t, "tutor.submissions", cfg.NatsSubject)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	require.Equal(t, 4, cfg.Concurrency)
}

func TestReadEnvConfigOverrides(t *testing.T) {
	t.Setenv("TUTOR_TRANSPORT", "sqs")
	t.Setenv("SUBM_SQS_URL", "https://sqs.example/subm")
	t.Setenv("RESPONSE_SQS_URL", "https://sqs.example/resp")
	t.Setenv("TUTOR_CONCURRENCY", "8")
	t.Setenv("PYTHON_BIN", "/usr/local/bin/python3")

	cfg, err := ReadEnvConfig()
	require.NoError(t, err)

	require.Equal(t, TransportSQS, cfg.Transport)
	require.Equal(t, "https://sqs.example/subm", cfg.SubmSqsUrl)
	require.Equal(t, 8, cfg.Concurrency)
	require.Equal(t, "/usr/local/bin/python3", cfg.PythonBin)
}

func TestReadEnvConfigRejectsBadValues(t *testing.T) {
	t.Setenv("TUTOR_TRANSPORT", "carrier-pigeon")
	_, err := ReadEnvConfig()
	require.Error(t, err)

	t.Setenv("TUTOR_TRANSPORT", "nats")
	t.Setenv("TUTOR_CONCURRENCY", "zero")
	_, err = ReadEnvConfig()
	require.Error(t, err)
}

func TestReadEnvConfigSqsRequiresQueues(t *testing.T) {
	t.Setenv("TUTOR_TRANSPORT", "sqs")
	t.Setenv("SUBM_SQS_URL", "")
	t.Setenv("RESPONSE_SQS_URL", "")

	_, err := ReadEnvConfig()
	require.ErrorContains(t, err, "sqs transport requires")
}
