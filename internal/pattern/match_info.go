package pattern

// Group is one capture group of a match. A group that did not take part in
// the match has Matched set to false and offsets of -1.
type Group struct {
	Start   int
	End     int
	Text    string
	Matched bool
}

// MatchInfo describes a successful match. Group 0 is the full match.
type MatchInfo struct {
	Groups []Group
}

// GroupCount returns the number of group slots, including group 0.
func (mi *MatchInfo) GroupCount() int {
	if mi == nil {
		return 0
	}
	return len(mi.Groups)
}

// Group returns the text of group i and whether it participated in the match.
func (mi *MatchInfo) Group(i int) (string, bool) {
	if mi == nil || i < 0 || i >= len(mi.Groups) {
		return "", false
	}
	g := mi.Groups[i]
	return g.Text, g.Matched
}
