package api

// TestResult is the outcome of one test case. It is built once by the
// coordinator and never mutated afterwards.
type TestResult struct {
	TestID int  `json:"test_id"`
	Passed bool `json:"passed"`

	// Input is the newline-joined input queue, nil when no input was fed.
	Input          *string `json:"input_data"`
	ExpectedOutput string  `json:"expected_output"`
	ActualOutput   *string `json:"actual_output"`

	// ErrorMessage carries stderr content, the timeout notice, or an
	// infrastructure error description.
	ErrorMessage *string `json:"error_message"`

	TimeMs float64 `json:"execution_time_ms"`
}

// ExecResponse aggregates per-test results. Everything in it is derived
// from the TestResult list.
type ExecResponse struct {
	EvalUuid string `json:"eval_uuid"`

	Success     bool         `json:"success"`
	TotalTests  int          `json:"total_tests"`
	PassedTests int          `json:"passed_tests"`
	TestResults []TestResult `json:"test_results"`

	// OverallOutput is the newline-joined list of non-empty actual
	// outputs, in test order. Nil when every test printed nothing.
	OverallOutput *string  `json:"overall_output"`
	RuntimeErrors []string `json:"runtime_errors"`

	TotalTimeMs float64 `json:"execution_time_total_ms"`
}

// StructuralFacts is the parse-derived half of an analysis: syntax
// validity plus node counts and a complexity approximation.
type StructuralFacts struct {
	IsValid      bool     `json:"is_valid"`
	SyntaxErrors []string `json:"syntax_errors"`

	Functions    int `json:"functions_defined"`
	Classes      int `json:"classes_defined"`
	Loops        int `json:"loops_used"`
	Conditionals int `json:"conditionals_used"`
	Assignments  int `json:"variables_assigned"`
	Imports      int `json:"imports_used"`

	// Complexity starts at 1 and grows with branches, loops, exception
	// handlers and compound boolean operands.
	Complexity int `json:"complexity_score"`
}

// StyleFindings is the raw-text half of an analysis.
type StyleFindings struct {
	Issues        []string `json:"style_issues"`
	GoodPractices []string `json:"good_practices"`
	Readability   int      `json:"readability_score"` // 1..10
}

// AnalysisReport is the complete answer of the analysis operation. The
// caller always receives every field populated, degraded to generic
// fallback content when the text-generation collaborator is unavailable.
type AnalysisReport struct {
	EvalUuid string `json:"eval_uuid"`

	Score int `json:"overall_score"` // 0..100

	Syntax StructuralFacts `json:"syntax"`
	Style  StyleFindings   `json:"style"`

	LogicIssues []string `json:"logic_issues"`
	OutputDiffs []string `json:"output_patterns"`

	Hints []string `json:"adaptive_hints"` // at most 3, priority-ordered

	Feedback      string   `json:"personalized_feedback"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"areas_for_improvement"`
	NextSteps     []string `json:"next_steps"`
	Encouragement string   `json:"encouragement"`

	// FallbackUsed reports that the collaborator call failed and the
	// prose fields contain generic fallback content.
	FallbackUsed bool `json:"fallback_used"`
}
