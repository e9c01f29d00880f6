package sqsgath

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

// sqsAPI is the slice of the SQS client the gatherer uses.
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type sqsGatherer struct {
	client   sqsAPI
	queueUrl string
	evalUuid string
	log      *slog.Logger
}

// StartJob implements gatherer.ResultGatherer.
func (s *sqsGatherer) StartJob(runnerInfo string, totalTests int) {
	s.send(api.NewStartJob(s.evalUuid, runnerInfo, totalTests))
}

// ReachTest implements gatherer.ResultGatherer.
func (s *sqsGatherer) ReachTest(testID int, input *string, expected *string) {
	s.send(api.NewReachTest(s.evalUuid, testID, input, expected))
}

// FinishTest implements gatherer.ResultGatherer.
func (s *sqsGatherer) FinishTest(testID int, result api.TestResult) {
	s.send(api.NewFinishTest(s.evalUuid, result))
}

// FinishJob implements gatherer.ResultGatherer.
func (s *sqsGatherer) FinishJob(resp *api.ExecResponse) {
	s.sendFinishJob(resp)
}

// FinishReport implements gatherer.ResultGatherer.
func (s *sqsGatherer) FinishReport(report *api.AnalysisReport) {
	s.send(api.NewFinishReport(s.evalUuid, report))
}

// InternalError implements gatherer.ResultGatherer.
func (s *sqsGatherer) InternalError(msg string) {
	s.send(api.NewInternalError(s.evalUuid, msg))
}
