package domain

import "sort"

// SortLeadersDesc returns entries sorted non-increasing by value. Stable,
// so the API's arrival order breaks ties; the input slice is not mutated.
func SortLeadersDesc(entries []LeaderEntry) []LeaderEntry {
	sorted := append([]LeaderEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return sorted
}

// TopN truncates entries to at most n.
func TopN(entries []LeaderEntry, n int) []LeaderEntry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
