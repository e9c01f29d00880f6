// Package termgath prints evaluation events to the terminal. Used by
// the local run command.
package termgath

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

var (
	passMark = color.New(color.FgHiGreen).SprintFunc()
	failMark = color.New(color.FgHiRed).SprintFunc()
	faint    = color.New(color.Faint).SprintFunc()
)

type TerminalGatherer struct {
	StartedAt time.Time
}

func New() *TerminalGatherer { return &TerminalGatherer{StartedAt: time.Now()} }

func (t *TerminalGatherer) StartJob(runnerInfo string, totalTests int) {
	fmt.Printf("== Evaluation started: %d test(s) ==\n", totalTests)
	if runnerInfo != "" {
		fmt.Println(faint(runnerInfo))
	}
}

func (t *TerminalGatherer) ReachTest(testID int, input *string, expected *string) {
	fmt.Printf("-> Test %d\n", testID)
	if input != nil {
		fmt.Printf("   input: %s\n", faint(*input))
	}
}

func (t *TerminalGatherer) FinishTest(testID int, result api.TestResult) {
	mark := failMark("FAIL")
	if result.Passed {
		mark = passMark("PASS")
	}
	fmt.Printf("<- Test %d %s (%.1fms)\n", testID, mark, result.TimeMs)
	if !result.Passed {
		if result.ErrorMessage != nil {
			fmt.Printf("   error: %s\n", *result.ErrorMessage)
		} else if result.ActualOutput != nil {
			fmt.Printf("   expected: %q\n", result.ExpectedOutput)
			fmt.Printf("   actual:   %q\n", *result.ActualOutput)
		}
	}
}

func (t *TerminalGatherer) FinishJob(resp *api.ExecResponse) {
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	fmt.Printf("== Execution finished: %d/%d passed in %s ==\n",
		resp.PassedTests, resp.TotalTests, dur)
}

func (t *TerminalGatherer) FinishReport(report *api.AnalysisReport) {
	fmt.Printf("== Analysis: score %d/100 ==\n", report.Score)
	if !report.Syntax.IsValid {
		for _, e := range report.Syntax.SyntaxErrors {
			fmt.Printf("   %s\n", failMark(e))
		}
	}
	for _, h := range report.Hints {
		fmt.Printf("   hint: %s\n", h)
	}
	fmt.Println(report.Feedback)
	if report.FallbackUsed {
		fmt.Println(faint("(generic feedback: collaborator unavailable)"))
	}
}

func (t *TerminalGatherer) InternalError(msg string) {
	fmt.Printf("== Internal error: %s ==\n", failMark(msg))
}
