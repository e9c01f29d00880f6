package api

import "time"

// MsgType is a message type for streaming progress responses.
type MsgType string

// Streaming message type constants.
const (
	StartJobMsg     MsgType = "job_start"
	ReachTestMsg    MsgType = "test_reach"
	FinishTestMsg   MsgType = "test_finish"
	FinishJobMsg    MsgType = "job_finish"
	FinishReportMsg MsgType = "report_finish"
)

// Output size constraints applied before a result leaves the worker.
const (
	MaxStreamHeight = 40
	MaxStreamWidth  = 80
)

// Header is the common header for all streaming response messages.
type Header struct {
	EvalUuid string  `json:"eval_uuid"`
	MsgType  MsgType `json:"msg_type"`
}

// StartJob is sent once when an evaluation begins.
type StartJob struct {
	Header
	RunnerInfo  string `json:"runner_info"`
	TotalTests  int    `json:"total_tests"`
	StartedTime string `json:"started_time"`
}

// ReachTest is sent when the coordinator reaches a test case.
type ReachTest struct {
	Header
	TestID   int     `json:"test_id"`
	Input    *string `json:"input"`
	Expected *string `json:"expected"`
}

// FinishTest is sent when a test case completes.
type FinishTest struct {
	Header
	Result TestResult `json:"result"`
}

// FinishJob closes the execution phase and carries the full response.
type FinishJob struct {
	Header
	Response *ExecResponse `json:"response"`

	// Zstd marks that Response was zstd-compressed and base64-encoded
	// into CompressedResponse instead (SQS payload ceiling).
	Zstd               bool   `json:"zstd,omitempty"`
	CompressedResponse string `json:"compressed_response,omitempty"`
}

// FinishReport is sent after the analysis operation completes.
type FinishReport struct {
	Header
	Report *AnalysisReport `json:"report"`
}

// InternalErrorMsg reports a worker fault that prevented a normal
// response. Still a well-formed message, never a dropped connection.
type InternalErrorMsg struct {
	Header
	ErrorMessage string `json:"error_message"`
}

// InternalErrorType is the msg_type used by InternalErrorMsg.
const InternalErrorType MsgType = "internal_error"

func NewHeader(evalUuid string, msgType MsgType) Header {
	return Header{EvalUuid: evalUuid, MsgType: msgType}
}

func NewStartJob(evalUuid, runnerInfo string, totalTests int) StartJob {
	return StartJob{
		Header:      NewHeader(evalUuid, StartJobMsg),
		RunnerInfo:  runnerInfo,
		TotalTests:  totalTests,
		StartedTime: time.Now().Format(time.RFC3339),
	}
}

func NewReachTest(evalUuid string, testID int, input, expected *string) ReachTest {
	return ReachTest{
		Header:   NewHeader(evalUuid, ReachTestMsg),
		TestID:   testID,
		Input:    input,
		Expected: expected,
	}
}

func NewFinishTest(evalUuid string, result TestResult) FinishTest {
	return FinishTest{
		Header: NewHeader(evalUuid, FinishTestMsg),
		Result: result,
	}
}

func NewFinishJob(evalUuid string, resp *ExecResponse) FinishJob {
	return FinishJob{
		Header:   NewHeader(evalUuid, FinishJobMsg),
		Response: resp,
	}
}

func NewFinishReport(evalUuid string, report *AnalysisReport) FinishReport {
	return FinishReport{
		Header: NewHeader(evalUuid, FinishReportMsg),
		Report: report,
	}
}

func NewInternalError(evalUuid string, msg string) InternalErrorMsg {
	return InternalErrorMsg{
		Header:       NewHeader(evalUuid, InternalErrorType),
		ErrorMessage: msg,
	}
}
