package aggregate

import "github.com/netra-cyber/netra-portal/models"

// Group is a run of search matches sharing one key, in the order they arrived.
type Group struct {
	Name    string
	Matches []models.SearchMatch
}

// UnknownIdentifier labels file-search matches the backend did not tag with an identifier.
const UnknownIdentifier = "Unknown"

// GroupBySource partitions matches by source. Groups appear in the order their source was
// first seen and matches keep their relative order. Nothing is deduplicated.
func GroupBySource(matches []models.SearchMatch) []Group {
	return groupBy(matches, func(m models.SearchMatch) string {
		return m.Source
	})
}

// GroupByIdentifier partitions file-search matches by the identifier that produced them.
func GroupByIdentifier(matches []models.SearchMatch) []Group {
	return groupBy(matches, func(m models.SearchMatch) string {
		if m.SearchedIdentifier == "" {
			return UnknownIdentifier
		}
		return m.SearchedIdentifier
	})
}

func groupBy(matches []models.SearchMatch, key func(models.SearchMatch) string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, m := range matches {
		k := key(m)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Name: k})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}

	return groups
}
