package pattern

// Limits for the glob matcher. A pattern that needs more work than this is
// treated as not matching.
const (
	maxGlobSteps = 1 << 16
	maxGlobDepth = 128
)

type globMatcher struct {
	pattern   string
	input     string
	fold      bool
	steps     int
	exhausted bool
}

// globMatch reports whether s matches the glob pattern. A star matches any
// run of bytes, including none, and ? exactly one byte. [set] matches one byte
// from set; a leading ^ or ! negates it and a-z is an inclusive range. A class
// without a closing bracket never matches.
func globMatch(pattern, s string, fold bool) bool {
	g := &globMatcher{pattern: pattern, input: s, fold: fold}
	return g.match(0, 0, 0)
}

func (g *globMatcher) match(pi, si, depth int) bool {
	g.steps++
	if g.steps > maxGlobSteps || depth > maxGlobDepth {
		g.exhausted = true
		return false
	}

	for pi < len(g.pattern) {
		switch c := g.pattern[pi]; c {
		case '*':
			for pi < len(g.pattern) && g.pattern[pi] == '*' {
				pi++
			}
			if pi == len(g.pattern) {
				return true
			}
			for k := si; k <= len(g.input); k++ {
				if g.match(pi, k, depth+1) {
					return true
				}
				if g.exhausted {
					return false
				}
			}
			return false

		case '?':
			if si >= len(g.input) {
				return false
			}
			pi++
			si++

		case '[':
			if si >= len(g.input) {
				return false
			}
			next, ok := g.matchClass(pi, g.input[si])
			if !ok {
				return false
			}
			pi = next
			si++

		default:
			if si >= len(g.input) || !equalByte(c, g.input[si], g.fold) {
				return false
			}
			pi++
			si++
		}
	}

	return si == len(g.input)
}

// matchClass matches ch against the class starting at pattern[start] == '['.
// It returns the index just past the closing bracket and whether ch is in the
// class. A malformed class reports false.
func (g *globMatcher) matchClass(start int, ch byte) (int, bool) {
	i := start + 1
	negate := false
	if i < len(g.pattern) && (g.pattern[i] == '^' || g.pattern[i] == '!') {
		negate = true
		i++
	}

	found := false
	for i < len(g.pattern) && g.pattern[i] != ']' {
		lo := g.pattern[i]
		if i+2 < len(g.pattern) && g.pattern[i+1] == '-' && g.pattern[i+2] != ']' {
			hi := g.pattern[i+2]
			if inRange(lo, hi, ch, g.fold) {
				found = true
			}
			i += 3
			continue
		}
		if equalByte(lo, ch, g.fold) {
			found = true
		}
		i++
	}

	if i >= len(g.pattern) {
		return 0, false
	}

	return i + 1, found != negate
}

func inRange(lo, hi, ch byte, fold bool) bool {
	if lo <= ch && ch <= hi {
		return true
	}
	if !fold {
		return false
	}
	l, u := toLower(ch), toUpper(ch)
	return (lo <= l && l <= hi) || (lo <= u && u <= hi)
}
