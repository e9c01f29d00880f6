package tester

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joelmbaka/ai-python-tutor-app/api"
	"github.com/joelmbaka/ai-python-tutor-app/internal/analysis"
	"github.com/joelmbaka/ai-python-tutor-app/internal/feedback"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer"
)

// Service is the worker's external surface: one Execute call followed by
// one Analyze call per submission. Neither operation ever propagates a
// fault to the caller; the response objects are always complete.
type Service struct {
	tester   *Tester
	analyzer *analysis.Analyzer
	synth    *feedback.Synthesizer
	log      *slog.Logger
}

func NewService(t *Tester, a *analysis.Analyzer, s *feedback.Synthesizer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{tester: t, analyzer: a, synth: s, log: log}
}

// Execute runs the submission's test cases and reports progress through
// gath. Any internal fault becomes an ExecResponse with Success=false
// and a populated error list.
func (s *Service) Execute(ctx context.Context, req api.ExecRequest, gath gatherer.ResultGatherer) (resp api.ExecResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("execution panicked", "eval_uuid", req.EvalUuid, "panic", r)
			msg := fmt.Sprintf("Execution error: internal fault: %v", r)
			resp = api.ExecResponse{
				EvalUuid:      req.EvalUuid,
				Success:       false,
				TotalTests:    len(req.Tests),
				RuntimeErrors: []string{msg},
			}
			gath.InternalError(msg)
		}
	}()
	return s.tester.Evaluate(ctx, req, gath)
}

// Analyze produces the AnalysisReport for an executed submission. The
// structural, style, logic and score passes are deterministic; only the
// prose fields involve the collaborator, and those degrade to fallback
// content instead of failing.
func (s *Service) Analyze(ctx context.Context, req api.AnalyzeRequest, execResp api.ExecResponse, gath gatherer.ResultGatherer) (report api.AnalysisReport) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("analysis panicked", "eval_uuid", req.EvalUuid, "panic", r)
			report = fallbackReport(req)
			gath.FinishReport(&report)
		}
	}()

	facts := s.analyzer.Inspect(ctx, req.Code)
	style := analysis.Style(req.Code)
	issues, diffs := analysis.MatchLogic(execResp)

	report = s.synth.Report(ctx, req, execResp, facts, style, issues, diffs)
	gath.FinishReport(&report)
	return report
}

// fallbackReport is the last-resort analysis shape: still complete,
// still well-formed, clearly degraded.
func fallbackReport(req api.AnalyzeRequest) api.AnalysisReport {
	return api.AnalysisReport{
		EvalUuid: req.EvalUuid,
		Syntax: api.StructuralFacts{
			IsValid:      false,
			SyntaxErrors: []string{"Static analysis unavailable: internal fault"},
			Complexity:   1,
		},
		Style:         api.StyleFindings{Readability: 1},
		Hints:         []string{"Try running your code again"},
		Feedback:      "Keep practicing and learning!",
		Strengths:     []string{"Attempting the challenge"},
		Improvements:  []string{"Review the lesson concepts"},
		NextSteps:     []string{"Practice more examples"},
		Encouragement: "You're doing great!",
		FallbackUsed:  true,
	}
}
