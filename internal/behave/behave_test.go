package behave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSuite = `
[[scenarios]]
description = "greeting with input"

[[scenarios.request]]
code = """
name = input()
print(f'Hello, {name}!')
"""
lesson_id = "lesson-3"
timeout_sec = 5

[[scenarios.request.tests]]
input = ["Alice"]
expected = "Hello, Alice!"

[[scenarios.request.tests]]
input = ["Bob"]
expected = "Hello, Bob!"

[scenarios.expect]
success = true
passed = 2

[[scenarios]]
description = "broken syntax"

[[scenarios.request]]
code = "print('oops'"

[[scenarios.request.tests]]
expected = "oops"

[scenarios.expect]
success = true
passed = 0
`

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	cases, err := Parse(writeSuite(t, sampleSuite))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	first := cases[0]
	require.Equal(t, "greeting with input", first.Name)
	require.NotEmpty(t, first.Request.EvalUuid)
	require.Equal(t, "lesson-3", first.Request.LessonID)
	require.Equal(t, 5, first.Request.TimeoutSec)
	require.Len(t, first.Request.Tests, 2)
	require.Equal(t, []string{"Alice"}, first.Request.Tests[0].Input)
	require.Equal(t, "Hello, Alice!", first.Request.Tests[0].ExpectedOutput)
	require.True(t, first.Expect.Success)
	require.Equal(t, 2, first.Expect.Passed)

	// unset timeout falls back to the request default
	second := cases[1]
	require.Equal(t, 10, second.Request.TimeoutSec)
	require.NotEqual(t, first.Request.EvalUuid, second.Request.EvalUuid)
}

func TestParseMissingRequest(t *testing.T) {
	_, err := Parse(writeSuite(t, "[[scenarios]]\ndescription = \"empty\"\n"))
	require.ErrorContains(t, err, "missing request block")
}

func TestParseRejectsEmptyCode(t *testing.T) {
	suite := `
[[scenarios]]
description = "no code"
[[scenarios.request]]
code = ""
`
	_, err := Parse(writeSuite(t, suite))
	require.ErrorContains(t, err, "empty code")
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorContains(t, err, "failed to read behaviour file")
}
