package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/joelmbaka/ai-python-tutor-app/internal/behave"
	"github.com/joelmbaka/ai-python-tutor-app/internal/environment"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer/respbuilder"
)

// checkCmd runs a behaviour scenario suite against the local worker
// and compares outcomes with the expectations recorded in the file.
func checkCmd(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "run a behaviour scenario suite",
		ArgsUsage: "<scenarios.toml>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one scenario file argument")
			}
			cases, err := behave.Parse(c.Args().First())
			if err != nil {
				return err
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

			okMark := color.New(color.FgHiGreen).SprintFunc()
			badMark := color.New(color.FgHiRed).SprintFunc()

			failures := 0
			for _, tc := range cases {
				builder := respbuilder.New(tc.Request.EvalUuid)
				resp := svc.Execute(ctx, tc.Request, builder)

				ok := resp.Success == tc.Expect.Success && resp.PassedTests == tc.Expect.Passed
				if ok {
					fmt.Printf("%s %s\n", okMark("ok"), tc.Name)
					continue
				}
				failures++
				fmt.Printf("%s %s: want success=%v passed=%d, got success=%v passed=%d\n",
					badMark("FAIL"), tc.Name,
					tc.Expect.Success, tc.Expect.Passed,
					resp.Success, resp.PassedTests)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d scenario(s) failed", failures, len(cases))
			}
			fmt.Printf("all %d scenario(s) passed\n", len(cases))
			return nil
		},
	}
}
