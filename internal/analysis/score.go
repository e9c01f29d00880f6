package analysis

import "github.com/joelmbaka/ai-python-tutor-app/api"

// Score combines execution and analysis signals into a 0..100 value:
// 40% test pass ratio, 30% syntax validity, 20% execution success
// (half credit when execution failed), 10% good practices capped at 10.
// Deterministic: no collaborator input, no randomness.
func Score(resp api.ExecResponse, facts api.StructuralFacts, style api.StyleFindings) int {
	total := resp.TotalTests
	if total < 1 {
		total = 1
	}
	testScore := float64(resp.PassedTests) / float64(total) * 40

	syntaxScore := 0.0
	if facts.IsValid {
		syntaxScore = 30
	}

	execScore := 10.0
	if resp.Success {
		execScore = 20
	}

	styleScore := float64(2 * len(style.GoodPractices))
	if styleScore > 10 {
		styleScore = 10
	}

	return int(testScore + syntaxScore + execScore + styleScore)
}
