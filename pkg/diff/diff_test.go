package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	content := []byte("breakpoint: medium\nis_medium: true\n")
	require.Equal(t, "", GenerateUnifiedDiff(content, content, "a", "b"))

	_, stats := Lines(content, content, "a", "b")
	require.False(t, stats.Changed())
}

func TestLinesSingleChange(t *testing.T) {
	expected := []byte("breakpoint: small\nspacing:\n  md: 12\n")
	actual := []byte("breakpoint: medium\nspacing:\n  md: 16\n")

	out, stats := Lines(expected, actual, "iphone_se", "iphone_15")
	require.True(t, strings.HasPrefix(out, "--- iphone_se\n+++ iphone_15\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, out, "-breakpoint: small\n")
	require.Contains(t, out, "+breakpoint: medium\n")
	require.Contains(t, out, " spacing:\n")
	require.Contains(t, out, "-  md: 12\n")
	require.Contains(t, out, "+  md: 16\n")
	require.Equal(t, Stats{Added: 2, Removed: 2}, stats)
}

func TestLinesWholeLinesOnly(t *testing.T) {
	out, _ := Lines([]byte("xs: 3\n"), []byte("xs: 4\n"), "a", "b")

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n")[3:] {
		require.Contains(t, []string{"-xs: 3", "+xs: 4"}, line)
	}
}

func TestLinesEmptySide(t *testing.T) {
	out, stats := Lines(nil, []byte("a\nb\n"), "empty", "full")
	require.Contains(t, out, "@@ -1,0 +1,2 @@")
	require.Equal(t, Stats{Added: 2}, stats)
}

func TestGenerateUnifiedDiffTruncation(t *testing.T) {
	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&expected, "old %d\n", i)
		fmt.Fprintf(&actual, "new %d\n", i)
	}

	out := GenerateUnifiedDiff([]byte(expected.String()), []byte(actual.String()), "a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	require.Len(t, strings.Split(out, "\n"), maxDiffLines+2)
}
