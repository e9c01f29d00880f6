package feedback

import (
	"fmt"
	"strings"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

// buildPrompt assembles the collaborator request. Structure over
// eloquence: the model must answer with a single JSON object so the
// response maps directly onto the report fields.
func buildPrompt(req api.AnalyzeRequest, resp api.ExecResponse) string {
	interests := "various topics"
	if len(req.Profile.Interests) > 0 {
		interests = strings.Join(req.Profile.Interests, ", ")
	}

	errs := "None"
	if len(resp.RuntimeErrors) > 0 {
		errs = strings.Join(resp.RuntimeErrors, "; ")
	}

	concepts := strings.Join(req.ExpectedConcepts, ", ")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"You are a Python tutor for a %d-year-old student named %s with %s programming experience. ",
		req.Profile.Age, req.Profile.Name, req.Profile.Experience))
	sb.WriteString(fmt.Sprintf("They are interested in %s.\n\n", interests))

	sb.WriteString("STUDENT CODE:\n```python\n")
	sb.WriteString(req.Code)
	sb.WriteString("\n```\n\n")

	sb.WriteString("EXECUTION RESULTS:\n")
	sb.WriteString(fmt.Sprintf("- Tests: %d/%d passed\n", resp.PassedTests, resp.TotalTests))
	sb.WriteString(fmt.Sprintf("- Errors: %s\n\n", errs))

	sb.WriteString("LESSON CONTEXT:\n")
	sb.WriteString(fmt.Sprintf("- Lesson ID: %s\n", req.LessonID))
	sb.WriteString(fmt.Sprintf("- Expected concepts: %s\n\n", concepts))

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("- Write encouraging, age-appropriate feedback on the student's code.\n")
	sb.WriteString("- Name specific things the student did well and specific, actionable improvements.\n")
	sb.WriteString("- Suggest what to learn next and end with a personal, motivating message using their name and interests.\n\n")

	sb.WriteString("Respond ONLY with a JSON object with these fields:\n")
	sb.WriteString(`{"feedback": "<paragraph>", "strengths": ["..."], "improvements": ["..."], "next_steps": ["..."], "encouragement": "<message>"}`)
	sb.WriteString("\n")

	return sb.String()
}
