package fakein_test

import (
	"strings"
	"testing"

	"github.com/joelmbaka/ai-python-tutor-app/internal/fakein"
	"github.com/stretchr/testify/require"
)

func TestPrepareQueuesInputs(t *testing.T) {
	out := fakein.Prepare("print(input())", []string{"A", "B"})

	require.Contains(t, out, `_input_data = ["A", "B"]`)
	require.Contains(t, out, "_input_index = 0")
	require.Contains(t, out, `def input(prompt=""):`)
	require.True(t, strings.HasSuffix(out, "print(input())"),
		"student code must come last, untouched")
}

func TestPrepareAppliedWithEmptyQueue(t *testing.T) {
	out := fakein.Prepare("x = input()", nil)

	// The shim is injected even with no inputs so input() returns ""
	// instead of blocking on stdin.
	require.Contains(t, out, "_input_data = []")
	require.Contains(t, out, `return ""`)
}

func TestPrepareEscapesLiterals(t *testing.T) {
	out := fakein.Prepare("pass", []string{`say "hi"`, "tab\there", `back\slash`})

	require.Contains(t, out, `"say \"hi\""`)
	require.Contains(t, out, `"tab\there"`)
	require.Contains(t, out, `"back\\slash"`)
}
