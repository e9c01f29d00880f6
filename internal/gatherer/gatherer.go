// Package gatherer defines the progress/result sink the coordinator
// reports into. Implementations stream events to NATS or SQS, print
// them to a terminal, or accumulate them into response objects.
package gatherer

import "github.com/joelmbaka/ai-python-tutor-app/api"

// ResultGatherer receives evaluation events in order: StartJob, then
// ReachTest/FinishTest per test case, then FinishJob, then FinishReport.
// InternalError may replace any suffix of that sequence.
type ResultGatherer interface {
	StartJob(runnerInfo string, totalTests int)

	ReachTest(testID int, input *string, expected *string)
	FinishTest(testID int, result api.TestResult)

	FinishJob(resp *api.ExecResponse)
	FinishReport(report *api.AnalysisReport)

	InternalError(msg string)
}
