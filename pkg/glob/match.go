package glob

import "strconv"

// Match reports whether candidate matches the pattern.
//
// After the expression matches, every captured numeric range is validated:
// numerals with a leading zero never match, and the parsed value must lie
// within the declared bounds. A range inside an alternative that did not
// take part in the match is not checked.
func (p *Pattern) Match(candidate string) bool {
	if len(p.ranges) == 0 {
		return p.expr.MatchString(candidate)
	}

	loc := p.expr.FindStringSubmatchIndex(candidate)
	if loc == nil {
		return false
	}

	for idx, rng := range p.ranges {
		start, end := loc[2*(idx+1)], loc[2*(idx+1)+1]
		if start < 0 {
			continue
		}

		numeral := candidate[start:end]
		if numeral == "" || numeral[0] == '0' {
			return false
		}

		n, err := strconv.Atoi(numeral)
		if err != nil || !rng.Contains(n) {
			return false
		}
	}

	return true
}

// Match compiles pattern and reports whether candidate matches it.
func Match(pattern, candidate string) (bool, error) {
	compiled, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return compiled.Match(candidate), nil
}
