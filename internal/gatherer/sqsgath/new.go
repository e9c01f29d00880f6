// Package sqsgath streams evaluation events to an SQS response queue.
// Responses that would exceed the SQS payload ceiling are compressed
// with zstd and base64-encoded before sending.
package sqsgath

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// New creates an SQS gatherer using the default AWS credential chain.
func New(ctx context.Context, evalUuid, queueUrl, region string, log *slog.Logger) (*sqsGatherer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return newWithClient(sqs.NewFromConfig(cfg), evalUuid, queueUrl, log), nil
}

func newWithClient(client sqsAPI, evalUuid, queueUrl string, log *slog.Logger) *sqsGatherer {
	if log == nil {
		log = slog.Default()
	}
	return &sqsGatherer{
		client:   client,
		queueUrl: queueUrl,
		evalUuid: evalUuid,
		log:      log,
	}
}
