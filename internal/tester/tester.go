// Package tester coordinates one submission's evaluation: every test
// case runs in its own child process through the sandbox runner, results
// are streamed to a gatherer and aggregated into an ExecResponse.
package tester

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joelmbaka/ai-python-tutor-app/api"
	"github.com/joelmbaka/ai-python-tutor-app/internal/fakein"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer"
	"github.com/joelmbaka/ai-python-tutor-app/internal/sandbox"
)

type Tester struct {
	runner sandbox.Runner
	log    *slog.Logger
}

func New(runner sandbox.Runner, log *slog.Logger) *Tester {
	if log == nil {
		log = slog.Default()
	}
	return &Tester{runner: runner, log: log}
}

// Evaluate runs req's test cases sequentially, strictly isolated from
// one another: a timeout or fault in one test never aborts the rest.
// It never returns an error; internal faults surface as failed tests.
func (t *Tester) Evaluate(ctx context.Context, req api.ExecRequest, gath gatherer.ResultGatherer) api.ExecResponse {
	req = req.WithDefaults()
	timeout := time.Duration(req.TimeoutSec) * time.Second

	gath.StartJob(t.runner.Info(), len(req.Tests))
	start := time.Now()

	t.log.Info("evaluation started",
		"eval_uuid", req.EvalUuid,
		"lesson_id", req.LessonID,
		"tests", len(req.Tests),
		"timeout_sec", req.TimeoutSec)

	results := make([]api.TestResult, 0, len(req.Tests))
	passed := 0
	var outputs []string
	var runtimeErrors []string

	for i, tc := range req.Tests {
		input := normalizeInput(tc.Input)
		expected := strings.TrimSpace(tc.ExpectedOutput)
		gath.ReachTest(i, input, &expected)

		prepared := fakein.Prepare(req.Code, tc.Input)
		tr := t.runTest(ctx, i, prepared, input, expected, timeout)

		if tr.Passed {
			passed++
		}
		if tr.ActualOutput != nil && *tr.ActualOutput != "" {
			outputs = append(outputs, *tr.ActualOutput)
		}
		if tr.ErrorMessage != nil {
			runtimeErrors = append(runtimeErrors, *tr.ErrorMessage)
		}

		results = append(results, tr)
		gath.FinishTest(i, tr)
	}

	resp := api.ExecResponse{
		EvalUuid:      req.EvalUuid,
		Success:       len(results) > 0,
		TotalTests:    len(req.Tests),
		PassedTests:   passed,
		TestResults:   results,
		RuntimeErrors: runtimeErrors,
		TotalTimeMs:   float64(time.Since(start).Microseconds()) / 1000.0,
	}
	if len(outputs) > 0 {
		joined := strings.Join(outputs, "\n")
		resp.OverallOutput = &joined
	}

	gath.FinishJob(&resp)
	t.log.Info("evaluation finished",
		"eval_uuid", req.EvalUuid,
		"passed", passed,
		"total", len(req.Tests))
	return resp
}

// runTest executes one prepared program and applies the pass policy:
// trimmed stdout must equal trimmed expected output AND stderr must be
// empty. A nonzero exit code alone does not fail a matching test.
func (t *Tester) runTest(ctx context.Context, id int, prepared string, input *string, expected string, timeout time.Duration) api.TestResult {
	tr := api.TestResult{
		TestID:         id,
		Input:          input,
		ExpectedOutput: expected,
	}

	res, err := t.runner.Run(ctx, prepared, timeout)
	if err != nil {
		var sErr *sandbox.Error
		if errors.As(err, &sErr) && sErr.Kind == sandbox.KindTimeout {
			msg := err.Error()
			tr.ErrorMessage = &msg
			tr.TimeMs = timeout.Seconds() * 1000
			t.log.Warn("test timed out", "test_id", id, "timeout", timeout)
			return tr
		}
		msg := "Execution error: " + err.Error()
		tr.ErrorMessage = &msg
		t.log.Error("test execution failed", "test_id", id, "error", err)
		return tr
	}

	actual := strings.TrimSpace(res.Stdout)
	stderr := strings.TrimSpace(res.Stderr)

	tr.ActualOutput = &actual
	tr.TimeMs = res.WallMs
	tr.Passed = actual == expected && stderr == ""
	if stderr != "" {
		tr.ErrorMessage = &stderr
	}
	return tr
}

// normalizeInput joins the input queue for reporting; nil when no input
// was fed to the program.
func normalizeInput(inputs []string) *string {
	if len(inputs) == 0 {
		return nil
	}
	joined := strings.Join(inputs, "\n")
	return &joined
}
