// Package glob compiles EditorConfig section headers into anchored regular
// expressions and matches candidate paths against them.
//
// The dialect supports "*", "**", "?", character classes ("[abc]", "[!abc]"),
// brace alternation ("{a,b}") and numeric ranges ("{1..10}"). Numeric ranges
// become capture groups whose matched text is validated after the expression
// itself matched.
package glob

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxPatternLength is the longest section header, in bytes, that Compile accepts.
const MaxPatternLength = 4096

// ErrInvalidPattern is returned for patterns that cannot be compiled.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// numericBrace recognises a complete "{lower..upper}" token.
//
//nolint:gochecknoglobals // Read-only compiled expression.
var numericBrace = regexp.MustCompile(`^\{[+-]?\d+\.\.[+-]?\d+\}$`)

// Range is an inclusive numeric range declared with "{lower..upper}".
// Bounds may be negative and are not required to be ordered.
type Range struct {
	Lower int
	Upper int
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Lower && n <= r.Upper
}

// Pattern is a compiled glob.
type Pattern struct {
	source string
	expr   *regexp.Regexp
	ranges []Range
}

// String returns the glob the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Expr returns the regular expression the glob was translated to.
func (p *Pattern) Expr() string {
	return p.expr.String()
}

// Ranges returns the numeric ranges in the order they appear in the glob.
func (p *Pattern) Ranges() []Range {
	out := make([]Range, len(p.ranges))
	copy(out, p.ranges)
	return out
}

// compiler holds the translation state for a single Compile call.
type compiler struct {
	pattern      []rune
	out          strings.Builder
	ranges       []Range
	bracesPaired bool
	inClass      bool
	depth        int
	// literalClose marks the "}" positions that close a non-numeric {single}.
	literalClose map[int]bool
}

// Compile translates pattern into an executable Pattern.
func Compile(pattern string) (*Pattern, error) {
	if len(pattern) > MaxPatternLength {
		return nil, fmt.Errorf("%w: longer than %d bytes", ErrInvalidPattern, MaxPatternLength)
	}

	c := &compiler{
		pattern:      []rune(pattern),
		literalClose: make(map[int]bool),
	}
	c.bracesPaired = bracesPaired(c.pattern)

	if err := c.translate(); err != nil {
		return nil, err
	}

	expr, err := regexp.Compile("^" + c.out.String() + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &Pattern{source: pattern, expr: expr, ranges: c.ranges}, nil
}

func (c *compiler) translate() error {
	p := c.pattern

	for i := 0; i < len(p); i++ {
		switch r := p[i]; r {
		case '\\':
			if i+1 < len(p) {
				i++
				c.literal(p[i])
			} else {
				c.out.WriteString(`\\`)
			}

		case '?':
			if c.inClass {
				c.literal(r)
				continue
			}
			c.out.WriteString(`[^/]`)

		case '*':
			if c.inClass {
				c.literal(r)
				continue
			}
			if i+1 < len(p) && p[i+1] == '*' {
				c.out.WriteString(`.*`)
				i++
				continue
			}
			c.out.WriteString(`[^/]*`)

		case '[':
			i = c.openClass(i)

		case ']':
			if !c.inClass {
				c.out.WriteString(`\]`)
				continue
			}
			c.inClass = false
			c.out.WriteByte(']')

		case '-':
			if c.inClass {
				c.out.WriteByte('-')
				continue
			}
			c.out.WriteString(`\-`)

		case '{':
			if c.inClass || !c.bracesPaired {
				c.literal(r)
				continue
			}
			next, err := c.openBrace(i)
			if err != nil {
				return err
			}
			i = next

		case '}':
			if c.inClass || !c.bracesPaired || c.literalClose[i] {
				c.literal(r)
				continue
			}
			c.depth--
			c.out.WriteByte(')')

		case ',':
			if c.inClass || c.depth <= 0 {
				c.literal(r)
				continue
			}
			c.out.WriteByte('|')

		case '/':
			if c.inClass {
				c.literal(r)
				continue
			}
			if hasPrefixAt(p, i, "/**/") {
				// Matches a single separator as well as any number of directories.
				c.out.WriteString(`(?:/|/.*/)`)
				i += 3
				continue
			}
			c.out.WriteByte('/')

		default:
			c.literal(r)
		}
	}

	return nil
}

// literal writes r so that it only matches itself.
func (c *compiler) literal(r rune) {
	if isAlnum(r) {
		c.out.WriteRune(r)
		return
	}
	c.out.WriteString(regexp.QuoteMeta(string(r)))
}

// openClass handles "[" at index i and returns the index of the last consumed rune.
func (c *compiler) openClass(i int) int {
	p := c.pattern

	if c.inClass {
		c.out.WriteString(`\[`)
		return i
	}

	// Brackets spanning a separator are not a character class.
	if classHasSlash(p, i) {
		end := indexRune(p, i, ']')
		if end < 0 {
			c.out.WriteString(regexp.QuoteMeta(string(p[i:])))
			return len(p) - 1
		}
		c.out.WriteString(regexp.QuoteMeta(string(p[i : end+1])))
		return end
	}

	c.inClass = true
	if i+1 < len(p) && p[i+1] == '!' {
		c.out.WriteString(`[^/`)
		return i + 1
	}
	c.out.WriteByte('[')
	return i
}

// openBrace handles "{" at index i and returns the index of the last consumed rune.
func (c *compiler) openBrace(i int) (int, error) {
	end, single := singleBraceEnd(c.pattern, i)
	if !single {
		c.depth++
		c.out.WriteString(`(?:`)
		return i, nil
	}

	token := string(c.pattern[i : end+1])
	if !numericBrace.MatchString(token) {
		c.out.WriteString(`\{`)
		c.literalClose[end] = true
		return i, nil
	}

	rng, err := parseRange(token)
	if err != nil {
		return i, err
	}
	c.ranges = append(c.ranges, rng)
	c.out.WriteString(`([+-]?\d+)`)
	return end, nil
}

// parseRange parses a token already validated by numericBrace.
func parseRange(token string) (Range, error) {
	lower, upper, _ := strings.Cut(token[1:len(token)-1], "..")

	lo, err := strconv.Atoi(lower)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range bound %q: %v", ErrInvalidPattern, lower, err)
	}
	hi, err := strconv.Atoi(upper)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range bound %q: %v", ErrInvalidPattern, upper, err)
	}

	return Range{Lower: lo, Upper: hi}, nil
}

// bracesPaired reports whether unescaped "{" and "}" occur equally often.
func bracesPaired(p []rune) bool {
	var open, closed int
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			if i+1 < len(p) {
				i++
			}
		case '{':
			open++
		case '}':
			closed++
		}
	}
	return open == closed
}

// singleBraceEnd reports whether the brace at start closes without an
// unescaped comma in between, returning the index of the closing brace.
func singleBraceEnd(p []rune, start int) (int, bool) {
	for i := start + 1; i < len(p); i++ {
		switch p[i] {
		case '\\':
			if i+1 < len(p) {
				i++
			}
		case ',':
			return -1, false
		case '}':
			return i, true
		}
	}
	return -1, false
}

// classHasSlash reports whether a "/" appears before the first "]" after start.
func classHasSlash(p []rune, start int) bool {
	for i := start; i < len(p) && p[i] != ']'; i++ {
		if p[i] == '\\' && i+1 < len(p) {
			i++
			continue
		}
		if p[i] == '/' {
			return true
		}
	}
	return false
}

func indexRune(p []rune, start int, r rune) int {
	for i := start; i < len(p); i++ {
		if p[i] == r {
			return i
		}
	}
	return -1
}

func hasPrefixAt(p []rune, start int, prefix string) bool {
	for offset, r := range []rune(prefix) {
		if start+offset >= len(p) || p[start+offset] != r {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
