// Package respbuilder accumulates gatherer events back into response
// objects. Consumers that only see the event stream (the scenario
// checker, local tooling) use it to reconstruct what the worker built.
package respbuilder

import (
	"github.com/joelmbaka/ai-python-tutor-app/api"
)

// Builder gathers evaluation events and rebuilds the ExecResponse and
// AnalysisReport they describe.
type Builder struct {
	evalUuid string

	runnerInfo string
	totalTests int

	testResults []api.TestResult

	response *api.ExecResponse
	report   *api.AnalysisReport

	internalError *string
}

func New(evalUuid string) *Builder {
	return &Builder{evalUuid: evalUuid}
}

// StartJob implements ResultGatherer.
func (b *Builder) StartJob(runnerInfo string, totalTests int) {
	b.runnerInfo = runnerInfo
	b.totalTests = totalTests
}

// ReachTest implements ResultGatherer.
func (b *Builder) ReachTest(testID int, input *string, expected *string) {}

// FinishTest implements ResultGatherer.
func (b *Builder) FinishTest(testID int, result api.TestResult) {
	b.testResults = append(b.testResults, result)
}

// FinishJob implements ResultGatherer.
func (b *Builder) FinishJob(resp *api.ExecResponse) {
	b.response = resp
}

// FinishReport implements ResultGatherer.
func (b *Builder) FinishReport(report *api.AnalysisReport) {
	b.report = report
}

// InternalError implements ResultGatherer.
func (b *Builder) InternalError(msg string) {
	b.internalError = &msg
}

// Response returns the gathered ExecResponse. When FinishJob never
// arrived it synthesizes a failed response from the per-test events so
// callers always get a usable object.
func (b *Builder) Response() api.ExecResponse {
	if b.response != nil {
		return *b.response
	}
	resp := api.ExecResponse{
		EvalUuid:    b.evalUuid,
		Success:     false,
		TotalTests:  b.totalTests,
		TestResults: b.testResults,
	}
	for _, tr := range b.testResults {
		if tr.Passed {
			resp.PassedTests++
		}
	}
	if b.internalError != nil {
		resp.RuntimeErrors = append(resp.RuntimeErrors, *b.internalError)
	}
	return resp
}

// Report returns the gathered AnalysisReport, nil when the analysis
// phase never finished.
func (b *Builder) Report() *api.AnalysisReport {
	return b.report
}

// RunnerInfo returns the runner description announced at job start.
func (b *Builder) RunnerInfo() string { return b.runnerInfo }
