package feedback

import (
	"fmt"
	"strings"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

const maxHints = 3

// youngLearnerAge is the upper bound of the simpler-phrasing band.
const youngLearnerAge = 10

// BuildHints assembles at most three hints in fixed priority order:
// a syntax hint when the parse failed, otherwise up to two logic-issue
// hints; then a failed-test-count hint; then one age-banded generic
// hint. Hint assembly never involves the collaborator.
func BuildHints(facts api.StructuralFacts, logicIssues []string, resp api.ExecResponse, profile api.StudentProfile) []string {
	var hints []string

	if !facts.IsValid {
		hints = append(hints, "Check your syntax - make sure all parentheses and brackets are closed")
	} else {
		n := 0
		for _, issue := range logicIssues {
			if n == 2 {
				break
			}
			if h, ok := hintForIssue(issue); ok {
				hints = append(hints, h)
				n++
			}
		}
	}

	if failed := resp.TotalTests - resp.PassedTests; failed > 0 {
		hints = append(hints, fmt.Sprintf("Try testing your code with the examples - %d test(s) didn't pass", failed))
	}

	if profile.Age <= youngLearnerAge {
		hints = append(hints, "Take your time and break the problem into small steps!")
	} else {
		hints = append(hints, "Consider edge cases and different input scenarios")
	}

	if len(hints) > maxHints {
		hints = hints[:maxHints]
	}
	return hints
}

func hintForIssue(issue string) (string, bool) {
	switch {
	case strings.Contains(issue, "not defined"):
		return "Make sure to define all variables before using them", true
	case strings.Contains(issue, "data type"):
		return "Check if you're using the right data types (strings, numbers, etc.)", true
	case strings.Contains(issue, "indentation"):
		return "Line up your code blocks - Python groups code by indentation", true
	}
	return "", false
}
