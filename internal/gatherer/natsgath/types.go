package natsgath

import (
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

type natsGatherer struct {
	nc       *nats.Conn
	subject  string
	evalUuid string
	log      *slog.Logger
}

// StartJob implements gatherer.ResultGatherer.
func (s *natsGatherer) StartJob(runnerInfo string, totalTests int) {
	s.send(api.NewStartJob(s.evalUuid, runnerInfo, totalTests))
}

// ReachTest implements gatherer.ResultGatherer.
func (s *natsGatherer) ReachTest(testID int, input *string, expected *string) {
	s.send(api.NewReachTest(
		s.evalUuid,
		testID,
		trimPtr(input, api.MaxStreamHeight, api.MaxStreamWidth),
		trimPtr(expected, api.MaxStreamHeight, api.MaxStreamWidth),
	))
}

// FinishTest implements gatherer.ResultGatherer.
func (s *natsGatherer) FinishTest(testID int, result api.TestResult) {
	s.send(api.NewFinishTest(s.evalUuid, trimTestResult(result)))
}

// FinishJob implements gatherer.ResultGatherer.
func (s *natsGatherer) FinishJob(resp *api.ExecResponse) {
	s.send(api.NewFinishJob(s.evalUuid, resp))
}

// FinishReport implements gatherer.ResultGatherer.
func (s *natsGatherer) FinishReport(report *api.AnalysisReport) {
	s.send(api.NewFinishReport(s.evalUuid, report))
}

// InternalError implements gatherer.ResultGatherer.
func (s *natsGatherer) InternalError(msg string) {
	s.send(api.NewInternalError(s.evalUuid, msg))
}

func trimTestResult(tr api.TestResult) api.TestResult {
	tr.Input = trimPtr(tr.Input, api.MaxStreamHeight, api.MaxStreamWidth)
	tr.ExpectedOutput = trimStrToRect(tr.ExpectedOutput, api.MaxStreamHeight, api.MaxStreamWidth)
	tr.ActualOutput = trimPtr(tr.ActualOutput, api.MaxStreamHeight, api.MaxStreamWidth)
	tr.ErrorMessage = trimPtr(tr.ErrorMessage, api.MaxStreamHeight, api.MaxStreamWidth)
	return tr
}
