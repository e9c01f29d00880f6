//go:build unix

package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// groupRunner is the native strategy on POSIX platforms: the child is
// started in its own process group so a timeout kill also reaps any
// grandchildren the submission may have spawned.
type groupRunner struct {
	cfg   Config
	procs *xsync.MapOf[string, *os.Process]
}

func newGroupRunner(cfg Config, procs *xsync.MapOf[string, *os.Process]) (Runner, bool) {
	return &groupRunner{cfg: cfg, procs: procs}, true
}

func (r *groupRunner) Info() string {
	return "process-group runner, " + r.cfg.PythonBin
}

func (r *groupRunner) Shutdown() {
	shutdownAll(r.procs, r.cfg.Logger)
}

func (r *groupRunner) Run(ctx context.Context, code string, timeout time.Duration) (*RunResult, error) {
	path, cleanup, err := writeTempSource(r.cfg, code)
	if err != nil {
		return nil, &Error{Kind: KindSpawn, Err: err}
	}
	defer cleanup()

	cmd := exec.Command(r.cfg.PythonBin, path)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdin = nil // input() is already virtualized; no real stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &Error{Kind: KindSpawn, Err: fmt.Errorf("failed to start process: %w", err)}
	}
	r.procs.Store(path, cmd.Process)
	defer r.procs.Delete(path)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case waitErr := <-done:
		return finish(&stdout, &stderr, cmd, waitErr, start)
	case <-time.After(timeout):
		r.killGroup(cmd)
		<-done // drain: Wait closes the pipes and reaps the child
		return nil, timeoutErr(timeout)
	case <-ctx.Done():
		r.killGroup(cmd)
		<-done
		return nil, &Error{Kind: KindCanceled, Err: ctx.Err()}
	}
}

func (r *groupRunner) killGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	// Negative pid addresses the whole process group.
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		r.cfg.Logger.Warn("process group kill failed, killing pid directly",
			"pid", cmd.Process.Pid, "error", err)
		_ = cmd.Process.Kill()
	}
}
