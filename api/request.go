package api

// DefaultTimeoutSec is applied when a request leaves TimeoutSec unset.
const DefaultTimeoutSec = 10

// DefaultMemoryLimitMB is advisory only: the value is accepted and echoed
// but never enforced by the local runner.
const DefaultMemoryLimitMB = 128

// TestCase pairs an interactive-input queue with the output the student's
// program is expected to print.
type TestCase struct {
	// Input holds the strings returned by successive input() calls,
	// in order. May be empty.
	Input []string `json:"input"`

	ExpectedOutput string `json:"expected_output"`
}

// ExecRequest asks the worker to run one student submission against a
// list of test cases.
type ExecRequest struct {
	EvalUuid string `json:"eval_uuid"`

	Code     string     `json:"code"`
	LessonID string     `json:"lesson_id"`
	Tests    []TestCase `json:"tests"`

	TimeoutSec    int `json:"timeout_sec"`
	MemoryLimitMB int `json:"memory_limit_mb"`
}

// WithDefaults returns a copy of the request with zero-valued limits
// replaced by defaults. TimeoutSec must end up positive.
func (r ExecRequest) WithDefaults() ExecRequest {
	if r.TimeoutSec <= 0 {
		r.TimeoutSec = DefaultTimeoutSec
	}
	if r.MemoryLimitMB <= 0 {
		r.MemoryLimitMB = DefaultMemoryLimitMB
	}
	return r
}

// StudentProfile carries learner context used to personalize feedback.
type StudentProfile struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Experience string   `json:"experience"` // "beginner" | "some" | "advanced"
	Interests  []string `json:"interests"`
}

// AnalyzeRequest asks for an AnalysisReport for a submission that has
// already been executed. The matching ExecResponse travels alongside it.
type AnalyzeRequest struct {
	EvalUuid string `json:"eval_uuid"`

	Code             string         `json:"code"`
	LessonID         string         `json:"lesson_id"`
	ExpectedConcepts []string       `json:"expected_concepts"`
	Profile          StudentProfile `json:"profile"`
}

// SubmissionMsg is the envelope the worker consumes from its request
// queue. Exactly one execution and one analysis happen per submission.
type SubmissionMsg struct {
	Exec    ExecRequest    `json:"exec"`
	Analyze AnalyzeRequest `json:"analyze"`

	// ReplyTo is the NATS subject or SQS queue URL for result messages.
	ReplyTo string `json:"reply_to"`
}
