package views

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"nhl-cli/internal/domain"
	"nhl-cli/internal/teststubs"
)

func standingsFixture() []domain.StandingsEntry {
	team := func(name, conference, division string, points int) domain.StandingsEntry {
		return domain.StandingsEntry{
			TeamName:    name,
			Conference:  conference,
			Division:    division,
			GamesPlayed: 40,
			Wins:        points / 2,
			Points:      points,
			PointPct:    float64(points) / 80,
		}
	}
	return []domain.StandingsEntry{
		team("A1", "Eastern", "Atlantic", 90),
		team("A2", "Eastern", "Atlantic", 85),
		team("A3", "Eastern", "Atlantic", 80),
		team("A4", "Eastern", "Atlantic", 75),
		team("A5", "Eastern", "Atlantic", 60),
		team("M1", "Eastern", "Metropolitan", 95),
		team("M2", "Eastern", "Metropolitan", 78),
		team("M3", "Eastern", "Metropolitan", 70),
		team("M4", "Eastern", "Metropolitan", 65),
		team("C1", "Western", "Central", 88),
		team("C2", "Western", "Central", 82),
		team("C3", "Western", "Central", 72),
		team("P1", "Western", "Pacific", 91),
		team("P2", "Western", "Pacific", 77),
		team("P3", "Western", "Pacific", 66),
	}
}

func renderStandings(t *testing.T, format string, entries []domain.StandingsEntry) (string, *teststubs.StubProvider) {
	t.Helper()
	stub := &teststubs.StubProvider{StandingsEntries: entries}
	var buf bytes.Buffer
	view := &Standings{Provider: stub, Out: &buf}
	if err := view.Render(context.Background(), format); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String(), stub
}

func TestStandingsInvalidFormatPrintsUsage(t *testing.T) {
	stub := &teststubs.StubProvider{}
	var buf bytes.Buffer
	view := &Standings{Provider: stub, Out: &buf}

	if err := view.Render(context.Background(), "galaxy"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !strings.Contains(buf.String(), "Invalid format") {
		t.Fatalf("expected usage hint, got %q", buf.String())
	}
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected no fetch for invalid format, got %d calls", stub.Calls.Load())
	}
}

func TestStandingsLeagueSortedByPoints(t *testing.T) {
	out, _ := renderStandings(t, "league", standingsFixture())

	if !strings.Contains(out, "NHL STANDINGS") {
		t.Fatalf("expected league title, got:\n%s", out)
	}

	// M1 (95) leads, P1 (91) second, A1 (90) third.
	posM1 := strings.Index(out, "M1")
	posP1 := strings.Index(out, "P1")
	posA1 := strings.Index(out, "A1")
	if !(posM1 < posP1 && posP1 < posA1) {
		t.Fatalf("expected points order M1 < P1 < A1, got:\n%s", out)
	}
}

func TestStandingsLeagueStableOnTies(t *testing.T) {
	entries := []domain.StandingsEntry{
		{TeamName: "First", Points: 80},
		{TeamName: "Second", Points: 80},
	}

	out, _ := renderStandings(t, "league", entries)

	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Fatalf("expected tie to keep input order, got:\n%s", out)
	}
}

func TestStandingsConferenceGroups(t *testing.T) {
	out, _ := renderStandings(t, "conference", standingsFixture())

	posEast := strings.Index(out, "EASTERN")
	posWest := strings.Index(out, "WESTERN")
	if posEast == -1 || posWest == -1 || posEast > posWest {
		t.Fatalf("expected lexical conference sections, got:\n%s", out)
	}

	// All eastern teams listed before the western header.
	for _, team := range []string{"A1", "M1"} {
		if strings.Index(out, team) > posWest {
			t.Fatalf("expected %s in eastern section, got:\n%s", team, out)
		}
	}
}

func TestStandingsWildCardSections(t *testing.T) {
	out, _ := renderStandings(t, "wildcard", standingsFixture())

	if !strings.Contains(out, "EASTERN CONFERENCE") || !strings.Contains(out, "WESTERN CONFERENCE") {
		t.Fatalf("expected conference banners, got:\n%s", out)
	}
	if !strings.Contains(out, "Atlantic Division") || !strings.Contains(out, "Metropolitan Division") {
		t.Fatalf("expected division sections, got:\n%s", out)
	}
	if !strings.Contains(out, "Wild Card") {
		t.Fatalf("expected wild card section, got:\n%s", out)
	}

	// Eastern wild card: A4 (75), M4 (65), A5 (60) with the cutoff after 2.
	lines := strings.Split(out, "\n")
	var wildCardLines []string
	inEastWildCard := false
	for _, line := range lines {
		if strings.Contains(line, "Wild Card") {
			inEastWildCard = true
			continue
		}
		if inEastWildCard && strings.Contains(line, "CONFERENCE") {
			break
		}
		if inEastWildCard && strings.HasPrefix(line, "A") || inEastWildCard && strings.HasPrefix(line, "M") {
			wildCardLines = append(wildCardLines, line)
		}
	}
	if len(wildCardLines) != 3 {
		t.Fatalf("expected 3 eastern wild-card rows, got %d:\n%s", len(wildCardLines), out)
	}
	if !strings.HasPrefix(wildCardLines[0], "A4") || !strings.HasPrefix(wildCardLines[1], "M4") || !strings.HasPrefix(wildCardLines[2], "A5") {
		t.Fatalf("unexpected wild-card order: %v", wildCardLines)
	}

	// Separator between the 2nd and 3rd wild-card rows.
	posM4 := strings.Index(out, "M4")
	posA5 := strings.Index(out, "A5")
	between := out[posM4:posA5]
	if !strings.Contains(between, strings.Repeat("-", scoreTableWidth)) {
		t.Fatalf("expected playoff-line separator after 2nd wild card, got:\n%s", between)
	}
}

func TestStandingsRowFormatting(t *testing.T) {
	entry := domain.StandingsEntry{
		TeamName:    "Canucks",
		GamesPlayed: 41,
		Wins:        27,
		Losses:      11,
		OTLosses:    3,
		Points:      57,
		PointPct:    0.695,
	}

	row := standingsRow(entry)

	if row != "Canucks                 41  27  11   3  57  0.695" {
		t.Fatalf("unexpected row %q", row)
	}
}

func TestStandingsPropagatesError(t *testing.T) {
	stub := &teststubs.StubProvider{StandingsErr: errors.New("down")}
	view := &Standings{Provider: stub, Out: &bytes.Buffer{}}

	if err := view.Render(context.Background(), "league"); err == nil {
		t.Fatal("expected error")
	}
}
