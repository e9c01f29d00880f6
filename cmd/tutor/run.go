package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/joelmbaka/ai-python-tutor-app/api"
	"github.com/joelmbaka/ai-python-tutor-app/internal/environment"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer/termgath"
)

// runCmd evaluates a single submission from local files and prints the
// results to the terminal. Useful for lesson authoring and debugging.
func runCmd(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "evaluate one local submission",
		ArgsUsage: "<code.py>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tests",
				Aliases: []string{"t"},
				Usage:   "JSON file with test cases",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "per-test timeout in seconds",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one code file argument")
			}
			code, err := os.ReadFile(c.Args().First())
			if err != nil {
				return fmt.Errorf("failed to read code file: %w", err)
			}

			var tests []api.TestCase
			if path := c.String("tests"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read tests file: %w", err)
				}
				if err := json.Unmarshal(data, &tests); err != nil {
					return fmt.Errorf("failed to parse tests file: %w", err)
				}
			}
			if len(tests) == 0 {
				// no tests given: just run the code once and show output
				tests = []api.TestCase{{}}
			}

			cfg, err := environment.ReadEnvConfig()
			if err != nil {
				return err
			}
			svc, runner, err := buildService(cfg, log)
			if err != nil {
				return err
			}
			defer runner.Shutdown()

			evalUuid := uuid.NewString()
			subm := api.SubmissionMsg{
				Exec: api.ExecRequest{
					EvalUuid:   evalUuid,
					Code:       string(code),
					Tests:      tests,
					TimeoutSec: int(c.Int("timeout")),
				},
				Analyze: api.AnalyzeRequest{
					EvalUuid: evalUuid,
					Code:     string(code),
				},
			}

			handle(ctx, svc, subm, termgath.New())
			return nil
		},
	}
}
