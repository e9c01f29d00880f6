// Package behave parses behaviour scenario files: TOML suites of
// submissions with expected evaluation outcomes, used by the check
// command to exercise the worker end to end.
package behave

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

// SpecTest is a single test case in the behaviour file.
type SpecTest struct {
	Input    []string `toml:"input"`
	Expected string   `toml:"expected"`
}

// SpecRequest represents a request block inside a scenario entry.
type SpecRequest struct {
	Code       string     `toml:"code"`
	LessonID   string     `toml:"lesson_id"`
	TimeoutSec int        `toml:"timeout_sec"`
	Tests      []SpecTest `toml:"tests"`
}

// SpecExpect describes the expected evaluation outcome.
type SpecExpect struct {
	Success bool `toml:"success"`
	Passed  int  `toml:"passed"`
}

// specSuite maps to [[scenarios]] entries. The request is written as an
// array-of-table, so it is modeled as a slice with one element used.
type specSuite struct {
	Description string        `toml:"description"`
	RequestAOT  []SpecRequest `toml:"request"`
	Expect      SpecExpect    `toml:"expect"`
}

type specRoot struct {
	Suites []specSuite `toml:"scenarios"`
}

// Case is a runnable scenario converted from TOML.
type Case struct {
	Name    string
	Request api.ExecRequest
	Expect  SpecExpect
}

// Parse reads a behaviour TOML file and converts it to runnable cases.
func Parse(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behaviour file: %w", err)
	}
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cases := make([]Case, 0, len(root.Suites))
	for _, suite := range root.Suites {
		if len(suite.RequestAOT) == 0 {
			return nil, fmt.Errorf("scenario %q is missing request block", suite.Description)
		}
		reqSpec := suite.RequestAOT[0]
		if reqSpec.Code == "" {
			return nil, fmt.Errorf("scenario %q has empty code", suite.Description)
		}

		tests := make([]api.TestCase, 0, len(reqSpec.Tests))
		for _, t := range reqSpec.Tests {
			tests = append(tests, api.TestCase{
				Input:          t.Input,
				ExpectedOutput: t.Expected,
			})
		}

		req := api.ExecRequest{
			EvalUuid:   uuid.NewString(),
			Code:       reqSpec.Code,
			LessonID:   reqSpec.LessonID,
			Tests:      tests,
			TimeoutSec: reqSpec.TimeoutSec,
		}.WithDefaults()

		cases = append(cases, Case{
			Name:    suite.Description,
			Request: req,
			Expect:  suite.Expect,
		})
	}
	return cases, nil
}
