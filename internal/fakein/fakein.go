// Package fakein rewrites student source so that interactive input()
// calls are satisfied from a fixed queue instead of a real stdin stream.
// The rewrite is applied to every submission, including those with no
// queued input, so a stray input() call returns "" instead of blocking.
package fakein

import "strings"

const inputShim = `def input(prompt=""):
    global _input_index
    if _input_index < len(_input_data):
        result = _input_data[_input_index]
        _input_index += 1
        return result
    return ""
`

// Prepare returns code prefixed with a deterministic input() replacement
// backed by inputs. It performs no execution and no parsing: the shim is
// plain text prepended above the untouched submission.
func Prepare(code string, inputs []string) string {
	var sb strings.Builder
	sb.WriteString("_input_data = [")
	for i, in := range inputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quote(in))
	}
	sb.WriteString("]\n_input_index = 0\n")
	sb.WriteString(inputShim)
	sb.WriteString(code)
	return sb.String()
}

// quote renders s as a Python string literal. Only the escapes that can
// appear in test-case input need handling; everything else passes through.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
