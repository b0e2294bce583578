package domain

import "sort"

// Teams printed as division leaders per division in wildcard standings.
const divisionLeaderCount = 3

// Wild-card slots above the playoff cutoff line.
const WildCardSlots = 2

// SortByPointsDesc returns entries sorted non-increasing by points. The
// sort is stable so ties keep their arrival order, and the input slice is
// left untouched.
func SortByPointsDesc(entries []StandingsEntry) []StandingsEntry {
	sorted := append([]StandingsEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})
	return sorted
}

// GroupByConference buckets entries by their free-text conference name.
func GroupByConference(entries []StandingsEntry) map[string][]StandingsEntry {
	groups := make(map[string][]StandingsEntry)
	for _, e := range entries {
		groups[e.Conference] = append(groups[e.Conference], e)
	}
	return groups
}

// ConferenceNames returns the group keys in ascending lexical order.
func ConferenceNames(groups map[string][]StandingsEntry) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DivisionLeaders is one division's top teams within wildcard standings.
type DivisionLeaders struct {
	Name    string
	Leaders []StandingsEntry
}

// ConferenceWildCard is one conference's wildcard-format standings: the
// top teams of each division, then everyone else in the wild-card race.
type ConferenceWildCard struct {
	Conference string
	Divisions  []DivisionLeaders
	WildCard   []StandingsEntry
}

// WildCardStandings partitions a standings snapshot into per-conference
// division leaders and wild-card lists. Conferences and divisions are
// walked in ascending lexical order; each division contributes up to
// three leaders (fewer when the division is short), and the remaining
// conference teams form the wild-card list sorted descending by points.
// Every team lands in exactly one of the two sections.
func WildCardStandings(entries []StandingsEntry) []ConferenceWildCard {
	byConference := GroupByConference(entries)

	result := make([]ConferenceWildCard, 0, len(byConference))
	for _, conference := range ConferenceNames(byConference) {
		confEntries := byConference[conference]

		byDivision := make(map[string][]StandingsEntry)
		for _, e := range confEntries {
			byDivision[e.Division] = append(byDivision[e.Division], e)
		}
		divisionNames := make([]string, 0, len(byDivision))
		for name := range byDivision {
			divisionNames = append(divisionNames, name)
		}
		sort.Strings(divisionNames)

		// Exclusion set rebuilt per conference, keyed by the same team
		// name identity used for grouping.
		leaderNames := make(map[string]bool)

		cwc := ConferenceWildCard{Conference: conference}
		for _, division := range divisionNames {
			ranked := SortByPointsDesc(byDivision[division])
			count := divisionLeaderCount
			if count > len(ranked) {
				count = len(ranked)
			}
			leaders := ranked[:count]
			for _, team := range leaders {
				leaderNames[team.TeamName] = true
			}
			cwc.Divisions = append(cwc.Divisions, DivisionLeaders{Name: division, Leaders: leaders})
		}

		for _, team := range SortByPointsDesc(confEntries) {
			if leaderNames[team.TeamName] {
				continue
			}
			cwc.WildCard = append(cwc.WildCard, team)
		}

		result = append(result, cwc)
	}
	return result
}
