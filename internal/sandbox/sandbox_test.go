package sandbox_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joelmbaka/ai-python-tutor-app/internal/sandbox"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T) (sandbox.Runner, string) {
	t.Helper()
	if _, err := sandbox.DetectPython(); err != nil {
		t.Skip("no python interpreter on PATH")
	}
	dir := t.TempDir()
	r, err := sandbox.New(sandbox.Config{TmpDir: dir})
	require.NoError(t, err)
	return r, dir
}

func TestRunCapturesOutput(t *testing.T) {
	r, _ := newRunner(t)

	res, err := r.Run(context.Background(), `print("hello")`, 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "hello\n", res.Stdout)
	require.Empty(t, res.Stderr)
	require.Equal(t, 0, res.ExitCode)
	require.Greater(t, res.WallMs, 0.0)
}

func TestRunNonzeroExitIsAResult(t *testing.T) {
	r, _ := newRunner(t)

	res, err := r.Run(context.Background(), "import sys\nprint(\"bye\")\nsys.exit(3)", 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "bye\n", res.Stdout)
}

func TestRunStderrCaptured(t *testing.T) {
	r, _ := newRunner(t)

	res, err := r.Run(context.Background(), "1/0", 5*time.Second)
	require.NoError(t, err)
	require.Contains(t, res.Stderr, "ZeroDivisionError")
}

func TestRunTimeoutKillsProcess(t *testing.T) {
	r, dir := newRunner(t)

	start := time.Now()
	_, err := r.Run(context.Background(), "while True:\n    pass", 1*time.Second)
	elapsed := time.Since(start)

	var sErr *sandbox.Error
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, sandbox.KindTimeout, sErr.Kind)
	require.Contains(t, err.Error(), "timed out")
	require.Less(t, elapsed, 3*time.Second, "kill+drain must stay within timeout plus small overhead")

	// The temp source must be gone even on the timeout path.
	requireEmptyDir(t, dir)
}

func TestRunContextCancelKillsProcess(t *testing.T) {
	r, dir := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	_, err := r.Run(ctx, "while True:\n    pass", 30*time.Second)

	var sErr *sandbox.Error
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, sandbox.KindCanceled, sErr.Kind)
	require.True(t, errors.Is(err, context.Canceled))
	requireEmptyDir(t, dir)
}

func TestRunCleansUpTempFiles(t *testing.T) {
	r, dir := newRunner(t)

	for i := 0; i < 5; i++ {
		_, err := r.Run(context.Background(), `print("ok")`, 5*time.Second)
		require.NoError(t, err)
	}
	requireEmptyDir(t, dir)
}

func TestRunSpawnFailureIsStructured(t *testing.T) {
	dir := t.TempDir()
	r, err := sandbox.New(sandbox.Config{PythonBin: "/nonexistent/python3", TmpDir: dir})
	require.NoError(t, err)

	_, err = r.Run(context.Background(), `print("x")`, 5*time.Second)

	var sErr *sandbox.Error
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, sandbox.KindSpawn, sErr.Kind)
	// Cleanup still happens when the spawn fails.
	requireEmptyDir(t, dir)
}

func requireEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "temp dir must be empty after runs")
}
