// Package sandbox runs one prepared Python program in an isolated child
// process: fresh temp file, no stdin, captured output, hard wall-clock
// timeout, guaranteed cleanup. There is no kernel-level confinement.
package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// Kind categorizes runner failures so callers never have to parse text.
type Kind int

const (
	// KindTimeout means the process exceeded its wall-clock budget and
	// was force-killed.
	KindTimeout Kind = iota
	// KindSpawn covers temp-file and process-start infrastructure faults.
	KindSpawn
	// KindCanceled means the surrounding task was cancelled; the child
	// was killed before the call returned.
	KindCanceled
)

// Error is the structured failure type of a Runner. Nothing else crosses
// the runner boundary.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// RunResult carries the captured output of a completed child process.
// Stdout and Stderr are decoded with invalid-UTF-8 replacement.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	WallMs   float64
}

// Runner executes one program text per call. Implementations must kill
// the child and remove the temp file on every exit path, including
// context cancellation.
type Runner interface {
	Run(ctx context.Context, code string, timeout time.Duration) (*RunResult, error)

	// Info names the strategy and interpreter for diagnostics.
	Info() string

	// Shutdown force-kills every in-flight child process.
	Shutdown()
}

// Config tunes a Runner. Zero values are filled by New.
type Config struct {
	// PythonBin is the interpreter executable. Detected when empty.
	PythonBin string
	// TmpDir receives per-run source files. os.TempDir() when empty.
	TmpDir string
	Logger *slog.Logger
}

func (c Config) withDefaults() (Config, error) {
	if c.PythonBin == "" {
		bin, err := DetectPython()
		if err != nil {
			return c, err
		}
		c.PythonBin = bin
	}
	if c.TmpDir == "" {
		c.TmpDir = os.TempDir()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c, nil
}

// DetectPython locates a Python 3 interpreter on PATH.
func DetectPython() (string, error) {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH")
}

// New selects a process-spawn strategy once, based on platform
// capability. Callers depend only on the Runner interface; both
// strategies satisfy the same timeout, cleanup and decode contract.
func New(cfg Config) (Runner, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, &Error{Kind: KindSpawn, Err: err}
	}
	procs := xsync.NewMapOf[string, *os.Process]()
	if r, ok := newGroupRunner(cfg, procs); ok {
		return r, nil
	}
	return &plainRunner{cfg: cfg, procs: procs}, nil
}

// writeTempSource creates a uniquely named source file and returns its
// path together with a cleanup func that is safe to call on every path.
func writeTempSource(cfg Config, code string) (string, func(), error) {
	path := filepath.Join(cfg.TmpDir, "submission-"+uuid.NewString()+".py")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", nil, fmt.Errorf("failed to write temp source: %w", err)
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			cfg.Logger.Warn("failed to remove temp source", "path", path, "error", err)
		}
	}
	return path, cleanup, nil
}

// decode converts raw child output to a string, replacing invalid byte
// sequences instead of failing.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

func timeoutErr(timeout time.Duration) *Error {
	return &Error{
		Kind: KindTimeout,
		Err:  fmt.Errorf("code execution timed out after %gs", timeout.Seconds()),
	}
}

func shutdownAll(procs *xsync.MapOf[string, *os.Process], logger *slog.Logger) {
	procs.Range(func(key string, p *os.Process) bool {
		logger.Warn("killing in-flight child process", "pid", p.Pid)
		_ = p.Kill()
		procs.Delete(key)
		return true
	})
}
