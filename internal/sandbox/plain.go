package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// plainRunner is the portable fallback strategy: exec.CommandContext
// with a deadline. It kills only the direct child, which is sufficient
// everywhere process groups are unavailable.
type plainRunner struct {
	cfg   Config
	procs *xsync.MapOf[string, *os.Process]
}

func (r *plainRunner) Info() string {
	return "command-context runner, " + r.cfg.PythonBin
}

func (r *plainRunner) Shutdown() {
	shutdownAll(r.procs, r.cfg.Logger)
}

func (r *plainRunner) Run(ctx context.Context, code string, timeout time.Duration) (*RunResult, error) {
	path, cleanup, err := writeTempSource(r.cfg, code)
	if err != nil {
		return nil, &Error{Kind: KindSpawn, Err: err}
	}
	defer cleanup()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.cfg.PythonBin, path)
	cmd.Stdin = nil
	// Give the pipes a moment to drain after the kill before Wait
	// abandons them.
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &Error{Kind: KindSpawn, Err: fmt.Errorf("failed to start process: %w", err)}
	}
	r.procs.Store(path, cmd.Process)
	defer r.procs.Delete(path)

	waitErr := cmd.Wait()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, timeoutErr(timeout)
	}
	if ctx.Err() != nil {
		return nil, &Error{Kind: KindCanceled, Err: ctx.Err()}
	}
	return finish(&stdout, &stderr, cmd, waitErr, start)
}

func finish(stdout, stderr *bytes.Buffer, cmd *exec.Cmd, waitErr error, start time.Time) (*RunResult, error) {
	res := &RunResult{
		Stdout: decode(stdout.Bytes()),
		Stderr: decode(stderr.Bytes()),
		WallMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if waitErr != nil {
		// A nonzero exit code is a result, not a runner failure.
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, &Error{Kind: KindSpawn, Err: fmt.Errorf("failed to wait for process: %w", waitErr)}
		}
	}
	return res, nil
}
