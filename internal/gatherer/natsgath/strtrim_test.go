package natsgath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimStrToRectWidth(t *testing.T) {
	s := strings.Repeat("a", 100)
	res := trimStrToRect(s, 40, 80)
	require.Equal(t, strings.Repeat("a", 80)+"[...]", res)
}

func TestTrimStrToRectHeight(t *testing.T) {
	s := strings.TrimSuffix(strings.Repeat("line\n", 50), "\n")
	res := trimStrToRect(s, 40, 80)

	lines := strings.Split(res, "\n")
	require.Len(t, lines, 41)
	require.Equal(t, "[...]", lines[40])
}

func TestTrimStrToRectUnchanged(t *testing.T) {
	require.Equal(t, "short", trimStrToRect("short", 40, 80))
	require.Equal(t, "", trimStrToRect("", 40, 80))
}

func TestTrimPtr(t *testing.T) {
	require.Nil(t, trimPtr(nil, 40, 80))

	empty := ""
	require.Nil(t, trimPtr(&empty, 40, 80))

	long := strings.Repeat("b", 90)
	res := trimPtr(&long, 40, 80)
	require.NotNil(t, res)
	require.Equal(t, strings.Repeat("b", 80)+"[...]", *res)
}
