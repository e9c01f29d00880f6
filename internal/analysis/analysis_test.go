package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joelmbaka/ai-python-tutor-app/internal/sandbox"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	bin, err := sandbox.DetectPython()
	if err != nil {
		t.Skip("python not available")
	}
	return New(bin, nil)
}

func TestInspectCounts(t *testing.T) {
	a := newAnalyzer(t)
	code := `import math
from os import path

def area(r):
    if r > 0:
        return math.pi * r * r
    return 0

class Circle:
    pass

total = 0
for i in range(3):
    while total < 10:
        total += 1
`
	facts := a.Inspect(context.Background(), code)

	require.True(t, facts.IsValid)
	require.Empty(t, facts.SyntaxErrors)
	require.Equal(t, 1, facts.Functions)
	require.Equal(t, 1, facts.Classes)
	require.Equal(t, 2, facts.Loops)
	require.Equal(t, 1, facts.Conditionals)
	require.Equal(t, 2, facts.Imports)
}

func TestInspectComplexity(t *testing.T) {
	a := newAnalyzer(t)

	// base 1, +1 if, +1 for
	facts := a.Inspect(context.Background(), "x = 1\nif x > 0:\n    for i in range(x):\n        pass\n")
	require.True(t, facts.IsValid)
	require.Equal(t, 3, facts.Complexity)

	// compound boolean condition adds one per extra operand
	facts = a.Inspect(context.Background(), "x = 1\nif x > 0 and x < 10:\n    for i in range(x):\n        pass\n")
	require.Equal(t, 4, facts.Complexity)
}

func TestInspectSyntaxError(t *testing.T) {
	a := newAnalyzer(t)
	facts := a.Inspect(context.Background(), "def broken(:\n    pass")

	require.False(t, facts.IsValid)
	require.Len(t, facts.SyntaxErrors, 1)
	require.Contains(t, facts.SyntaxErrors[0], "Syntax error at line 1")
	require.Equal(t, 1, facts.Complexity)
	require.Zero(t, facts.Functions)
}

func TestInspectDoesNotExecute(t *testing.T) {
	a := newAnalyzer(t)
	dir := t.TempDir()
	code := "import os\nos.rmdir(" + pyRepr(dir) + ")\n"

	facts := a.Inspect(context.Background(), code)

	require.True(t, facts.IsValid)
	require.DirExists(t, dir)
}

func TestInspectInterpreterFault(t *testing.T) {
	a := New("/nonexistent/python", nil)
	facts := a.Inspect(context.Background(), "print(1)")

	require.False(t, facts.IsValid)
	require.Contains(t, facts.SyntaxErrors[0], "Static analysis unavailable")
	require.Equal(t, 1, facts.Complexity)
}

func pyRepr(s string) string { return "'" + s + "'" }
