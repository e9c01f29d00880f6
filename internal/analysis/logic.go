package analysis

import (
	"fmt"
	"strings"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

// patternRule maps a known error-text substring to a human-readable
// issue label. Best-effort heuristics, not root-cause guarantees.
type patternRule struct {
	Substr string
	Label  string
}

var logicPatterns = []patternRule{
	{Substr: "NameError", Label: "Variable not defined before use"},
	{Substr: "TypeError", Label: "Incorrect data type usage"},
	{Substr: "IndentationError", Label: "Incorrect indentation"},
}

// MatchLogic cross-references failing tests against the pattern table.
// It returns issue labels for recognized runtime errors and output-diff
// notes for failures that produced no error at all.
func MatchLogic(resp api.ExecResponse) (issues []string, diffs []string) {
	for _, tr := range resp.TestResults {
		if tr.Passed {
			continue
		}
		if tr.ErrorMessage != nil {
			for _, rule := range logicPatterns {
				if strings.Contains(*tr.ErrorMessage, rule.Substr) {
					issues = append(issues, rule.Label)
				}
			}
			continue
		}
		if tr.ActualOutput != nil && *tr.ActualOutput != tr.ExpectedOutput {
			diffs = append(diffs, fmt.Sprintf("Expected '%s' but got '%s'",
				tr.ExpectedOutput, *tr.ActualOutput))
		}
	}
	return issues, diffs
}
