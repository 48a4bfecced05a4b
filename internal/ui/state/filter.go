package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindItems returns the items matching query, best match first. Labels are
// matched fuzzily and ordered exact, then prefix, then by fuzzy distance. When
// no label matches, items whose Detail contains the query are returned in list
// order. A blank query keeps every item in list order.
func FindItems(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return matchDetail(items, query)
	}
	lower := strings.ToLower(query)
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if ka, kb := labelRank(a.Target, lower), labelRank(b.Target, lower); ka != kb {
			return ka < kb
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.OriginalIndex < b.OriginalIndex
	})
	found := make([]Item, len(ranks))
	for i, r := range ranks {
		found[i] = items[r.OriginalIndex]
	}
	return found
}

func labelRank(label, lowerQuery string) int {
	l := strings.ToLower(label)
	switch {
	case l == lowerQuery:
		return 0
	case strings.HasPrefix(l, lowerQuery):
		return 1
	default:
		return 2
	}
}

// matchDetail finds items by category name.
func matchDetail(items []Item, query string) []Item {
	lower := strings.ToLower(query)
	found := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Detail != "" && strings.Contains(strings.ToLower(item.Detail), lower) {
			found = append(found, item)
		}
	}
	return found
}
