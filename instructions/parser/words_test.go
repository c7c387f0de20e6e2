package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWords(t *testing.T) {
	d := newDefaultDirectives()
	for _, tc := range []struct {
		in       string
		expected []string
	}{
		{in: "", expected: []string{}},
		{in: "  a   b\tc ", expected: []string{"a", "b", "c"}},
		{in: `"a b" c`, expected: []string{"a b", "c"}},
		{in: `'a "b"' c`, expected: []string{`a "b"`, "c"}},
		{in: `"a \"b\""`, expected: []string{`a "b"`}},
		{in: `"a\nb"`, expected: []string{`a\nb`}},
		{in: `'a\b'`, expected: []string{`a\b`}},
		{in: `a\ b\\c`, expected: []string{`a b\c`}},
		{in: `pre"mid dle"post`, expected: []string{"premid dlepost"}},
		{in: `"" ''`, expected: []string{"", ""}},
		{in: `trailing\`, expected: []string{"trailing"}},
	} {
		words, err := parseWords(tc.in, d)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.expected, words, tc.in)
	}
}

func TestParseWordsUnterminated(t *testing.T) {
	d := newDefaultDirectives()
	for _, in := range []string{`"a`, `'a`, `a "b c`, `"a\"`} {
		_, err := parseWords(in, d)
		require.ErrorContains(t, err, "unterminated quoted string", in)
	}
}

func TestSplitWordsKeepsQuoting(t *testing.T) {
	d := newDefaultDirectives()
	words, err := splitWords(`a="b c" d\ e 'f' g\`, d)
	require.NoError(t, err)
	require.Equal(t, []string{`a="b c"`, `d\ e`, `'f'`, `g\`}, words)

	for _, w := range words {
		require.NotContains(t, unquote(w, d), `"`)
	}
	require.Equal(t, "b c", unquote(`"b c"`, d))
}

func TestParseWordsBacktickEscape(t *testing.T) {
	d := newDefaultDirectives()
	require.NoError(t, d.setEscapeToken("`"))

	words, err := parseWords("C:\\Program` Files \"a`\"b\"", d)
	require.NoError(t, err)
	require.Equal(t, []string{`C:\Program Files`, `a"b`}, words)
}

func TestExtractBuilderFlags(t *testing.T) {
	for _, tc := range []struct {
		in    string
		flags []string
		rest  string
	}{
		{in: "/a /b", flags: []string{}, rest: "/a /b"},
		{in: "--from=builder /a /b", flags: []string{"--from=builder"}, rest: "/a /b"},
		{in: "  --a --b=c   rest of line", flags: []string{"--a", "--b=c"}, rest: "rest of line"},
		{in: `--label="x y" --chmod=0755 src dst`, flags: []string{`--label="x y"`, "--chmod=0755"}, rest: "src dst"},
		{in: `--name=a\ b rest`, flags: []string{`--name=a\ b`}, rest: "rest"},
		{in: "--only --flags", flags: []string{"--only", "--flags"}, rest: ""},
		{in: "-- --not-a-flag x", flags: []string{}, rest: "--not-a-flag x"},
		{in: "--link --", flags: []string{"--link"}, rest: ""},
		{in: "-x --y", flags: []string{}, rest: "-x --y"},
	} {
		rest, flags, err := extractBuilderFlags(tc.in, DefaultEscapeToken)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.flags, flags, tc.in)
		require.Equal(t, tc.rest, strings.TrimSpace(rest), tc.in)
	}

	_, _, err := extractBuilderFlags(`--label='x y`, DefaultEscapeToken)
	require.ErrorContains(t, err, "unterminated quoted string in flag --label='x y")
}

func TestSplitCommand(t *testing.T) {
	d := newDefaultDirectives()
	cmd, flags, args, err := splitCommand("  Copy\t--from=a   x y  ", d)
	require.NoError(t, err)
	require.Equal(t, "Copy", cmd)
	require.Equal(t, []string{"--from=a"}, flags)
	require.Equal(t, "x y", args)

	cmd, flags, args, err = splitCommand("RUN", d)
	require.NoError(t, err)
	require.Equal(t, "RUN", cmd)
	require.Empty(t, flags)
	require.Empty(t, args)
}
