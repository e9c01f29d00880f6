package feedback

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

func TestBuildHintsSyntaxTakesPriority(t *testing.T) {
	facts := api.StructuralFacts{IsValid: false}
	issues := []string{"Variable not defined before use"}
	resp := api.ExecResponse{TotalTests: 2, PassedTests: 0}

	hints := BuildHints(facts, issues, resp, api.StudentProfile{Age: 12})

	require.Len(t, hints, 3)
	require.Contains(t, hints[0], "Check your syntax")
	// logic hints are suppressed while the parse is broken
	for _, h := range hints {
		require.NotContains(t, h, "define all variables")
	}
}

func TestBuildHintsLogicMapping(t *testing.T) {
	facts := api.StructuralFacts{IsValid: true}
	issues := []string{
		"Variable not defined before use",
		"Incorrect data type usage",
		"Incorrect indentation",
	}
	resp := api.ExecResponse{TotalTests: 1, PassedTests: 1}

	hints := BuildHints(facts, issues, resp, api.StudentProfile{Age: 14})

	// at most two logic hints, then the age hint
	require.Len(t, hints, 3)
	require.Contains(t, hints[0], "define all variables")
	require.Contains(t, hints[1], "data types")
	require.Equal(t, "Consider edge cases and different input scenarios", hints[2])
}

func TestBuildHintsFailedCountAndAgeBand(t *testing.T) {
	facts := api.StructuralFacts{IsValid: true}
	resp := api.ExecResponse{TotalTests: 3, PassedTests: 1}

	young := BuildHints(facts, nil, resp, api.StudentProfile{Age: 8})
	require.Len(t, young, 2)
	require.Contains(t, young[0], "2 test(s) didn't pass")
	require.Contains(t, young[1], "small steps")

	older := BuildHints(facts, nil, resp, api.StudentProfile{Age: 15})
	require.Contains(t, older[1], "edge cases")
}

func TestBuildHintsTruncatesToThree(t *testing.T) {
	facts := api.StructuralFacts{IsValid: false}
	issues := []string{"Variable not defined before use", "Incorrect data type usage"}
	resp := api.ExecResponse{TotalTests: 5, PassedTests: 0}

	hints := BuildHints(facts, issues, resp, api.StudentProfile{Age: 9})
	require.Len(t, hints, 3)
}
