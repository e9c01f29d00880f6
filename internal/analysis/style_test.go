package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleLongLine(t *testing.T) {
	code := "short = 1\n" + "x = '" + strings.Repeat("a", 120) + "'"
	f := Style(code)

	require.Len(t, f.Issues, 1)
	require.Contains(t, f.Issues[0], "Line 2 is too long")
	require.Equal(t, 9, f.Readability)
}

func TestStyleCommentsAndNames(t *testing.T) {
	code := "# compute the total\ntotal = 0\n"
	f := Style(code)

	require.Empty(t, f.Issues)
	require.Contains(t, f.GoodPractices, "Good use of comments on line 1")
	require.Contains(t, f.GoodPractices, "Uses meaningful variable names")
	require.Equal(t, 10, f.Readability)
}

func TestStyleShortAndUnderscoreNamesIgnored(t *testing.T) {
	f := Style("x = 1\n_tmp = 2\nab = 3\n")
	require.NotContains(t, f.GoodPractices, "Uses meaningful variable names")
}

func TestStyleMeaningfulNamesReportedOnce(t *testing.T) {
	f := Style("alpha = 1\nbeta = 2\ngamma = 3\n")

	count := 0
	for _, g := range f.GoodPractices {
		if g == "Uses meaningful variable names" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestStyleReadabilityFloor(t *testing.T) {
	long := "v = '" + strings.Repeat("z", 150) + "'\n"
	f := Style(strings.Repeat(long, 12))

	require.Len(t, f.Issues, 12)
	require.Equal(t, 1, f.Readability)
}
