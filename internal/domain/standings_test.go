package domain

import "testing"

func entry(team, conference, division string, points int) StandingsEntry {
	return StandingsEntry{
		TeamName:   team,
		Conference: conference,
		Division:   division,
		Points:     points,
	}
}

func TestSortByPointsDescIsStableOnTies(t *testing.T) {
	entries := []StandingsEntry{
		entry("First", "E", "A", 80),
		entry("Second", "E", "A", 90),
		entry("Third", "E", "A", 80),
	}

	sorted := SortByPointsDesc(entries)

	want := []string{"Second", "First", "Third"}
	for i, name := range want {
		if sorted[i].TeamName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, sorted[i].TeamName)
		}
	}
	if entries[0].TeamName != "First" {
		t.Fatal("expected input slice to be left untouched")
	}
}

func TestGroupByConferenceCoversEveryTeamOnce(t *testing.T) {
	entries := []StandingsEntry{
		entry("A", "Eastern", "Atlantic", 50),
		entry("B", "Western", "Pacific", 60),
		entry("C", "Eastern", "Metropolitan", 70),
	}

	groups := GroupByConference(entries)

	if len(groups["Eastern"]) != 2 || len(groups["Western"]) != 1 {
		t.Fatalf("unexpected grouping %+v", groups)
	}
	if names := ConferenceNames(groups); len(names) != 2 || names[0] != "Eastern" || names[1] != "Western" {
		t.Fatalf("expected lexical conference order, got %v", names)
	}
}

func TestWildCardStandingsPartition(t *testing.T) {
	// One conference, two divisions of four: 3x2 leaders, 2 wild cards.
	entries := []StandingsEntry{
		entry("A1", "Eastern", "Atlantic", 90),
		entry("A2", "Eastern", "Atlantic", 85),
		entry("A3", "Eastern", "Atlantic", 80),
		entry("A4", "Eastern", "Atlantic", 75),
		entry("M1", "Eastern", "Metropolitan", 95),
		entry("M2", "Eastern", "Metropolitan", 70),
		entry("M3", "Eastern", "Metropolitan", 65),
		entry("M4", "Eastern", "Metropolitan", 78),
	}

	result := WildCardStandings(entries)
	if len(result) != 1 {
		t.Fatalf("expected 1 conference, got %d", len(result))
	}

	cwc := result[0]
	if cwc.Conference != "Eastern" {
		t.Fatalf("unexpected conference %s", cwc.Conference)
	}
	if len(cwc.Divisions) != 2 {
		t.Fatalf("expected 2 divisions, got %d", len(cwc.Divisions))
	}

	leaderCount := 0
	seen := map[string]bool{}
	for _, div := range cwc.Divisions {
		leaderCount += len(div.Leaders)
		for _, team := range div.Leaders {
			seen[team.TeamName] = true
		}
	}
	if leaderCount != 6 {
		t.Fatalf("expected 3x2 division leaders, got %d", leaderCount)
	}

	if len(cwc.WildCard) != 2 {
		t.Fatalf("expected 2 wild-card teams, got %d", len(cwc.WildCard))
	}
	if cwc.WildCard[0].TeamName != "M4" || cwc.WildCard[1].TeamName != "A4" {
		t.Fatalf("expected wild card sorted by points, got %+v", cwc.WildCard)
	}
	for _, team := range cwc.WildCard {
		if seen[team.TeamName] {
			t.Fatalf("team %s appears as both leader and wild card", team.TeamName)
		}
		seen[team.TeamName] = true
	}
	if len(seen) != len(entries) {
		t.Fatalf("expected every team in exactly one section, saw %d of %d", len(seen), len(entries))
	}
}

func TestWildCardStandingsShortDivisionTruncates(t *testing.T) {
	entries := []StandingsEntry{
		entry("A1", "Western", "Central", 90),
		entry("A2", "Western", "Central", 85),
		entry("P1", "Western", "Pacific", 95),
	}

	result := WildCardStandings(entries)
	if len(result) != 1 {
		t.Fatalf("expected 1 conference, got %d", len(result))
	}

	total := 0
	for _, div := range result[0].Divisions {
		total += len(div.Leaders)
	}
	if total != 3 {
		t.Fatalf("expected all teams as leaders, got %d", total)
	}
	if len(result[0].WildCard) != 0 {
		t.Fatalf("expected empty wild card, got %+v", result[0].WildCard)
	}
}

func TestWildCardStandingsDivisionsSorted(t *testing.T) {
	entries := []StandingsEntry{
		entry("P1", "Western", "Pacific", 50),
		entry("C1", "Western", "Central", 60),
	}

	result := WildCardStandings(entries)
	divs := result[0].Divisions
	if divs[0].Name != "Central" || divs[1].Name != "Pacific" {
		t.Fatalf("expected lexical division order, got %+v", divs)
	}
}
