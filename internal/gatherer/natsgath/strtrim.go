package natsgath

import (
	"strings"
)

// trimStrToRect bounds a string to the given line and column limits,
// marking each truncation with "[...]".
func trimStrToRect(s string, maxHeight int, maxWidth int) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
		lines = append(lines, "[...]")
	}
	res := ""
	for i, line := range lines {
		if i > 0 {
			res += "\n"
		}
		if len(line) > maxWidth {
			res += line[:maxWidth] + "[...]"
		} else {
			res += line
		}
	}
	return res
}

func trimPtr(s *string, maxHeight, maxWidth int) *string {
	if s == nil {
		return nil
	}
	trimmed := trimStrToRect(*s, maxHeight, maxWidth)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
