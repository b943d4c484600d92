package glob_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/pkg/glob"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		// Wildcards.
		{"star matches name", "*.py", "app.py", true},
		{"star stops at separator", "*.py", "lib/app.py", false},
		{"double star crosses separators", "**.py", "lib/deep/app.py", true},
		{"double star matches bare name", "**.py", "app.py", true},
		{"question mark matches one rune", "?.txt", "a.txt", true},
		{"question mark needs a rune", "?.txt", ".txt", false},
		{"question mark matches only one rune", "?.txt", "ab.txt", false},
		{"question mark skips separator", "a?b", "a/b", false},
		{"literal name", "Makefile", "Makefile", true},
		{"match is anchored", "Makefile", "Makefile.bak", false},
		{"match is case sensitive", "Makefile", "makefile", false},

		// Character classes.
		{"class matches member", "[abc].txt", "b.txt", true},
		{"class rejects non member", "[abc].txt", "d.txt", false},
		{"class range", "file[0-9]", "file7", true},
		{"class range rejects", "file[0-9]", "filex", false},
		{"negated class matches outsider", "[!abc]", "d", true},
		{"negated class rejects member", "[!abc]", "a", false},
		{"negated class rejects separator", "[!abc]", "/", false},
		{"class with slash is literal", "[a/b]", "[a/b]", true},
		{"class with slash is not a class", "[a/b]", "a", false},
		{"star inside class is literal", "[*]", "*", true},
		{"star inside class is not a wildcard", "[*]", "x", false},
		{"stray closing bracket is literal", "a]", "a]", true},

		// Braces.
		{"alternation first", "*.{js,py}", "app.js", true},
		{"alternation second", "*.{js,py}", "app.py", true},
		{"alternation miss", "*.{js,py}", "app.rb", false},
		{"nested alternation", "{a,{b,c}}.txt", "c.txt", true},
		{"empty alternative", "a{,b}", "a", true},
		{"single word braces are literal", "{single}.txt", "{single}.txt", true},
		{"single word braces do not alternate", "{single}.txt", "single.txt", false},
		{"empty braces are literal", "{}", "{}", true},
		{"unbalanced open brace is literal", "{a", "{a", true},
		{"unbalanced close brace is literal", "a}", "a}", true},
		{"unbalanced comma stays literal", "{a,b", "{a,b", true},
		{"comma outside braces is literal", "a,b", "a,b", true},
		{"escaped comma stays in single", `{a\,b}`, "{a,b}", true},

		// Numeric ranges.
		{"range inside", "{1..5}", "3", true},
		{"range lower bound", "{1..5}", "1", true},
		{"range upper bound", "{1..5}", "5", true},
		{"range explicit plus", "{1..5}", "+3", true},
		{"range leading zero", "{1..5}", "03", false},
		{"range above", "{1..5}", "6", false},
		{"range negative", "{1..5}", "-1", false},
		{"range non numeric", "{1..5}", "a", false},
		{"negative range", "{-3..3}", "-2", true},
		{"negative range bound", "{-3..-1}", "-3", true},
		{"zero is rejected as leading zero", "{-3..3}", "0", false},
		{"range in name", "file{1..10}.txt", "file10.txt", true},
		{"two ranges", "{1..2}x{5..6}", "2x5", true},
		{"second range fails", "{1..2}x{5..6}", "2x7", false},
		{"adjacent ranges split digits", "{1..2}{3..4}", "14", true},
		{"range in unused alternative", "{x,{1..3}}", "x", true},
		{"range in used alternative", "{x,{1..3}}", "2", true},
		{"range in used alternative out of bounds", "{x,{1..3}}", "4", false},

		// Separators.
		{"double star directory matches direct child", "a/**/b", "a/b", true},
		{"double star directory matches deep child", "a/**/b", "a/x/y/b", true},
		{"double star directory needs separators", "a/**/b", "ab", false},
		{"single star directory", "src/*/main.go", "src/cmd/main.go", true},
		{"single star directory is one level", "src/*/main.go", "src/a/b/main.go", false},

		// Escapes and metacharacters.
		{"escaped star is literal", `\*.txt`, "*.txt", true},
		{"escaped star does not glob", `\*.txt`, "a.txt", false},
		{"escaped letter is the letter", `\a`, "a", true},
		{"trailing backslash is literal", `a\`, `a\`, true},
		{"dot is literal", "a.b", "a.b", true},
		{"dot is not any rune", "a.b", "axb", false},
		{"regex metacharacters are literal", "a+(b)|$", "a+(b)|$", true},
		{"dash outside class", "a-b", "a-b", true},
		{"non ascii name", "über*.md", "überblick.md", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := glob.Match(testCase.pattern, testCase.candidate)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got, "pattern %q candidate %q", testCase.pattern, testCase.candidate)
		})
	}
}

func TestCompile_Ranges(t *testing.T) {
	t.Parallel()

	pattern, err := glob.Compile("v{1..3}/{-5..+7}/{a,b}/{9..2}")
	require.NoError(t, err)

	assert.Equal(t, []glob.Range{
		{Lower: 1, Upper: 3},
		{Lower: -5, Upper: 7},
		{Lower: 9, Upper: 2},
	}, pattern.Ranges())
	assert.Equal(t, "v{1..3}/{-5..+7}/{a,b}/{9..2}", pattern.String())
}

func TestCompile_InvertedRangeNeverMatches(t *testing.T) {
	t.Parallel()

	pattern, err := glob.Compile("{9..2}")
	require.NoError(t, err)

	for _, candidate := range []string{"2", "5", "9"} {
		assert.False(t, pattern.Match(candidate), candidate)
	}
}

func TestCompile_Expr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
	}{
		{"*.py", `^[^/]*\.py$`},
		{"**", `^.*$`},
		{"[!ab]", `^[^/ab]$`},
		{"{a,b}", `^(?:a|b)$`},
		{"{1..2}", `^([+-]?\d+)$`},
		{"a/**/b", `^a(?:/|/.*/)b$`},
		{"{x", `^\{x$`},
	}

	for _, testCase := range tests {
		t.Run(testCase.pattern, func(t *testing.T) {
			t.Parallel()

			pattern, err := glob.Compile(testCase.pattern)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, pattern.Expr())
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
	}{
		{"too long", strings.Repeat("a", glob.MaxPatternLength+1)},
		{"unclosed class", "[abc"},
		{"close before open", "}a{"},
		{"range bound overflow", "{1..99999999999999999999}"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := glob.Compile(testCase.pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, glob.ErrInvalidPattern)
		})
	}
}

func TestCompile_MaxLengthAccepted(t *testing.T) {
	t.Parallel()

	pattern := strings.Repeat("a", glob.MaxPatternLength)
	compiled, err := glob.Compile(pattern)
	require.NoError(t, err)
	assert.True(t, compiled.Match(pattern))
}
