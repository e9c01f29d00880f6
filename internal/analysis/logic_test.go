package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

func strp(s string) *string { return &s }

func TestMatchLogicPatterns(t *testing.T) {
	resp := api.ExecResponse{TestResults: []api.TestResult{
		{Passed: false, ErrorMessage: strp("NameError: name 'foo' is not defined")},
		{Passed: false, ErrorMessage: strp("TypeError: can only concatenate str")},
		{Passed: false, ErrorMessage: strp("IndentationError: unexpected indent")},
		{Passed: false, ErrorMessage: strp("ZeroDivisionError: division by zero")},
	}}

	issues, diffs := MatchLogic(resp)

	require.Equal(t, []string{
		"Variable not defined before use",
		"Incorrect data type usage",
		"Incorrect indentation",
	}, issues)
	require.Empty(t, diffs)
}

func TestMatchLogicOutputDiffs(t *testing.T) {
	resp := api.ExecResponse{TestResults: []api.TestResult{
		{Passed: false, ExpectedOutput: "4", ActualOutput: strp("5")},
		// an errored test never yields a diff, even with output captured
		{Passed: false, ExpectedOutput: "1", ActualOutput: strp("2"), ErrorMessage: strp("ValueError: bad input")},
		{Passed: true, ExpectedOutput: "ok", ActualOutput: strp("ok")},
	}}

	issues, diffs := MatchLogic(resp)

	require.Empty(t, issues)
	require.Equal(t, []string{"Expected '4' but got '5'"}, diffs)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		resp  api.ExecResponse
		facts api.StructuralFacts
		style api.StyleFindings
		want  int
	}{
		{
			name:  "perfect",
			resp:  api.ExecResponse{Success: true, TotalTests: 2, PassedTests: 2},
			facts: api.StructuralFacts{IsValid: true},
			style: api.StyleFindings{GoodPractices: []string{"a", "b", "c", "d", "e", "f"}},
			want:  100, // 40 + 30 + 20 + capped 10
		},
		{
			name:  "half passing, execution failed",
			resp:  api.ExecResponse{Success: false, TotalTests: 2, PassedTests: 1},
			facts: api.StructuralFacts{IsValid: true},
			style: api.StyleFindings{GoodPractices: []string{"a"}},
			want:  62, // 20 + 30 + 10 + 2
		},
		{
			name:  "broken syntax, nothing ran",
			resp:  api.ExecResponse{Success: false},
			facts: api.StructuralFacts{IsValid: false},
			want:  10,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Score(tc.resp, tc.facts, tc.style))
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	resp := api.ExecResponse{Success: true, TotalTests: 3, PassedTests: 2}
	facts := api.StructuralFacts{IsValid: true}
	style := api.StyleFindings{GoodPractices: []string{"x"}}

	first := Score(resp, facts, style)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Score(resp, facts, style))
	}
}
