// Package analysis derives structural facts, style findings, logic issue
// labels and an overall score from a submission without executing it.
// The structural pass delegates parsing to Python's own ast module via a
// small embedded introspection script; everything else is pure Go.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	_ "embed"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

//go:embed inspect.py
var inspectScript string

// inspectTimeout bounds the parse step. Parsing is cheap; this only
// guards against a wedged interpreter.
const inspectTimeout = 10 * time.Second

type Analyzer struct {
	pythonBin string
	log       *slog.Logger
}

func New(pythonBin string, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{pythonBin: pythonBin, log: log}
}

// Inspect parses code with the interpreter's ast module and returns
// structural facts. The submission is parsed, never executed. Parse
// failure yields IsValid=false with zero counts and complexity 1; an
// interpreter fault yields the same shape with a diagnostic entry so
// the caller always gets a usable result.
func (a *Analyzer) Inspect(ctx context.Context, code string) api.StructuralFacts {
	ctx, cancel := context.WithTimeout(ctx, inspectTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.pythonBin, "-c", inspectScript)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		a.log.Error("ast inspection failed", "error", err, "stderr", stderr.String())
		return unavailableFacts(err)
	}

	var raw struct {
		IsValid      bool     `json:"is_valid"`
		SyntaxErrors []string `json:"syntax_errors"`
		Functions    int      `json:"functions"`
		Classes      int      `json:"classes"`
		Loops        int      `json:"loops"`
		Conditionals int      `json:"conditionals"`
		Assignments  int      `json:"assignments"`
		Imports      int      `json:"imports"`
		Complexity   int      `json:"complexity"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		a.log.Error("failed to decode ast inspection output", "error", err)
		return unavailableFacts(err)
	}

	return api.StructuralFacts{
		IsValid:      raw.IsValid,
		SyntaxErrors: raw.SyntaxErrors,
		Functions:    raw.Functions,
		Classes:      raw.Classes,
		Loops:        raw.Loops,
		Conditionals: raw.Conditionals,
		Assignments:  raw.Assignments,
		Imports:      raw.Imports,
		Complexity:   raw.Complexity,
	}
}

func unavailableFacts(err error) api.StructuralFacts {
	return api.StructuralFacts{
		IsValid:      false,
		SyntaxErrors: []string{fmt.Sprintf("Static analysis unavailable: %v", err)},
		Complexity:   1,
	}
}
