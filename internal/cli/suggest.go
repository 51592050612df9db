package cli

import (
	"sort"
	"strings"
)

const (
	maxSuggestions        = 3
	maxSuggestionDistance = 3
)

// levenshtein calculates the case-insensitive edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// suggest returns registry names close to word, nearest first. A word that
// already names a command gets none.
func (c *CLI) suggest(word string) []string {
	if word == "" {
		return nil
	}
	if _, ok := c.registry.Lookup(word); ok {
		return nil
	}

	var found []suggestion
	for _, name := range c.registry.Names() {
		dist := levenshtein(word, name)
		if dist > 0 && dist <= maxSuggestionDistance {
			found = append(found, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})

	if len(found) > maxSuggestions {
		found = found[:maxSuggestions]
	}

	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.name
	}
	return names
}
