package analysis

import (
	"fmt"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

const maxLineLength = 100

var assignTargetRe = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*=`)

// Style runs the raw-text style pass. It is independent of parse
// success and therefore runs even on syntactically invalid code.
func Style(code string) api.StyleFindings {
	var issues []string
	var good []string

	for i, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := i + 1
		if len(line) > maxLineLength {
			issues = append(issues, fmt.Sprintf("Line %d is too long (%d characters)", n, len(line)))
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			good = append(good, fmt.Sprintf("Good use of comments on line %d", n))
		}
	}

	// Assignment-target identifiers longer than two characters and not
	// underscore-prefixed count as meaningful names, once overall.
	meaningful := mapset.NewSet[string]()
	for _, m := range assignTargetRe.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if len(name) > 2 && !strings.HasPrefix(name, "_") {
			meaningful.Add(name)
		}
	}
	if meaningful.Cardinality() > 0 {
		good = append(good, "Uses meaningful variable names")
	}

	return api.StyleFindings{
		Issues:        issues,
		GoodPractices: good,
		Readability:   clamp(10-len(issues), 1, 10),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
