// Package feedback turns execution and analysis results into a complete
// AnalysisReport. Prose fields come from an OpenAI-compatible
// text-generation collaborator; the collaborator is treated as
// unreliable and every fault degrades to fixed fallback content, so the
// caller always receives a fully populated report.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joelmbaka/ai-python-tutor-app/api"
	"github.com/joelmbaka/ai-python-tutor-app/internal/analysis"
)

// chatCompleter is the slice of the OpenAI client the synthesizer uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// defaultTimeout bounds one collaborator call; past it the fallback
// content is used.
const defaultTimeout = 30 * time.Second

type Synthesizer struct {
	client  chatCompleter
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a synthesizer backed by an OpenAI-compatible endpoint.
// An empty apiKey disables the collaborator entirely: every report uses
// fallback prose, which keeps the worker usable offline.
func New(baseURL, apiKey, model string, log *slog.Logger) *Synthesizer {
	if log == nil {
		log = slog.Default()
	}
	s := &Synthesizer{model: model, timeout: defaultTimeout, log: log}
	if apiKey == "" {
		return s
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	s.client = openai.NewClientWithConfig(cfg)
	return s
}

// NewWithClient injects a collaborator client; used by tests.
func NewWithClient(client chatCompleter, model string, log *slog.Logger) *Synthesizer {
	if log == nil {
		log = slog.Default()
	}
	return &Synthesizer{client: client, model: model, timeout: defaultTimeout, log: log}
}

// prose is the JSON shape the collaborator is asked to answer with.
type prose struct {
	Feedback      string   `json:"feedback"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	NextSteps     []string `json:"next_steps"`
	Encouragement string   `json:"encouragement"`
}

// Report builds the complete AnalysisReport for one submission. Hints
// and score are assembled before and independently of the collaborator
// call; a collaborator fault is replaced with fallback prose and is
// signaled via FallbackUsed, never via a partial report.
func (s *Synthesizer) Report(
	ctx context.Context,
	req api.AnalyzeRequest,
	resp api.ExecResponse,
	facts api.StructuralFacts,
	style api.StyleFindings,
	logicIssues []string,
	outputDiffs []string,
) api.AnalysisReport {
	hints := BuildHints(facts, logicIssues, resp, req.Profile)
	score := analysis.Score(resp, facts, style)

	p, fallback := s.generate(ctx, req, resp)

	return api.AnalysisReport{
		EvalUuid:      req.EvalUuid,
		Score:         score,
		Syntax:        facts,
		Style:         style,
		LogicIssues:   logicIssues,
		OutputDiffs:   outputDiffs,
		Hints:         hints,
		Feedback:      p.Feedback,
		Strengths:     p.Strengths,
		Improvements:  p.Improvements,
		NextSteps:     p.NextSteps,
		Encouragement: p.Encouragement,
		FallbackUsed:  fallback,
	}
}

func (s *Synthesizer) generate(ctx context.Context, req api.AnalyzeRequest, resp api.ExecResponse) (prose, bool) {
	if s.client == nil {
		return fallbackProse(req.Profile), true
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	chatResp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req, resp)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		s.log.Warn("collaborator call failed, using fallback feedback", "error", err)
		return fallbackProse(req.Profile), true
	}
	if len(chatResp.Choices) == 0 {
		s.log.Warn("collaborator returned no choices, using fallback feedback")
		return fallbackProse(req.Profile), true
	}

	var p prose
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &p); err != nil {
		s.log.Warn("failed to parse collaborator response, using fallback feedback", "error", err)
		return fallbackProse(req.Profile), true
	}
	if p.Feedback == "" || p.Encouragement == "" {
		return fallbackProse(req.Profile), true
	}
	return p, false
}

// fallbackProse is fixed, non-empty generic content used whenever the
// collaborator is unavailable or answers unusably.
func fallbackProse(profile api.StudentProfile) prose {
	name := profile.Name
	if name == "" {
		name = "there"
	}
	return prose{
		Feedback:      "Keep practicing and learning!",
		Strengths:     []string{"Attempting the challenge"},
		Improvements:  []string{"Review the lesson concepts"},
		NextSteps:     []string{"Practice more examples"},
		Encouragement: fmt.Sprintf("You're doing great, %s!", name),
	}
}
