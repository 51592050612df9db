package store

import (
	"slices"
	"strings"

	"github.com/nexuslink/nlink/internal/domain"
)

func sortComponents(cs []domain.Component) {
	slices.SortStableFunc(cs, func(a, b domain.Component) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareVersions(a.Version, b.Version)
	})
}
