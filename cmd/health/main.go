// Command health checks that the worker's runtime dependencies are
// usable: a Python interpreter, a working sandbox, and collaborator
// configuration. It prints a table and exits nonzero on errors.
package main

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	pretty_table "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/joelmbaka/ai-python-tutor-app/internal/environment"
	"github.com/joelmbaka/ai-python-tutor-app/internal/sandbox"
)

type feedbackRow struct {
	unit    string
	health  int // 0 - OK, 1 - Warning, 2 - Error
	message string
}

func main() {
	feedback := make([]feedbackRow, 0)

	pythonRow, pythonBin := ensurePythonOk()
	feedback = append(feedback, pythonRow)

	if pythonRow.health != 2 {
		feedback = append(feedback, ensureSandboxOk(pythonBin))
	}
	feedback = append(feedback, checkCollaborator())

	outputFeedback(feedback)

	for _, row := range feedback {
		if row.health == 2 {
			os.Exit(1)
		}
	}
}

func ensurePythonOk() (feedbackRow, string) {
	bin, err := sandbox.DetectPython()
	if err != nil {
		return feedbackRow{unit: "Python", health: 2, message: err.Error()}, ""
	}

	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		return feedbackRow{unit: "Python", health: 2, message: err.Error()}, ""
	}
	version := strings.TrimSpace(string(out))
	if !strings.Contains(version, "Python 3") {
		return feedbackRow{unit: "Python", health: 1, message: version + " (Python 3 expected)"}, bin
	}
	return feedbackRow{unit: "Python", health: 0, message: version + " at " + bin}, bin
}

func ensureSandboxOk(pythonBin string) feedbackRow {
	runner, err := sandbox.New(sandbox.Config{PythonBin: pythonBin})
	if err != nil {
		return feedbackRow{unit: "Sandbox", health: 2, message: err.Error()}
	}
	defer runner.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	res, err := runner.Run(ctx, "print('hello')", 10*time.Second)
	if err != nil {
		return feedbackRow{unit: "Sandbox", health: 2, message: err.Error()}
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		return feedbackRow{unit: "Sandbox", health: 2, message: "unexpected output: " + res.Stdout}
	}
	return feedbackRow{unit: "Sandbox", health: 0, message: runner.Info()}
}

func checkCollaborator() feedbackRow {
	cfg, err := environment.ReadEnvConfig()
	if err != nil {
		return feedbackRow{unit: "Collaborator", health: 1, message: err.Error()}
	}
	if cfg.OpenAIApiKey == "" {
		return feedbackRow{
			unit:    "Collaborator",
			health:  1,
			message: "OPENAI_API_KEY unset; reports will use fallback feedback",
		}
	}
	return feedbackRow{unit: "Collaborator", health: 0, message: "model " + cfg.OpenAIModel}
}

func outputFeedback(feedback []feedbackRow) {
	t := pretty_table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(pretty_table.Row{"Unit", "Health", "Message"})
	for _, row := range feedback {
		healthCode := ""
		switch row.health {
		case 0:
			healthCode = "OKAY"
		case 1:
			healthCode = "WARN"
		case 2:
			healthCode = "ERROR"
		}

		t.AppendRow(
			pretty_table.Row{
				row.unit,
				healthCode,
				row.message,
			})
	}
	t.SetStyle(pretty_table.StyleColoredDark)
	textColor := text.Transformer(func(s interface{}) string {
		switch s.(string) {
		case "OKAY":
			return text.FgHiGreen.Sprint(s)
		case "WARN":
			return text.FgHiYellow.Sprint(s)
		case "ERROR":
			return text.FgHiRed.Sprint(s)
		}
		return ""
	})

	t.SetColumnConfigs([]pretty_table.ColumnConfig{
		{
			Name:        "Health",
			Transformer: textColor,
			Align:       text.AlignCenter,
		},
	})
	t.Render()
}
