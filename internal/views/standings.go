package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"nhl-cli/internal/domain"
)

// Standings renders the current standings snapshot in one of three
// groupings: league, conference, or wildcard.
type Standings struct {
	Provider StandingsProvider
	Out      io.Writer
}

// Render prints the standings in the requested format. An unrecognized
// format prints a usage hint and returns nil.
func (v *Standings) Render(ctx context.Context, format string) error {
	out := resolveOut(v.Out)

	switch strings.ToLower(format) {
	case "league", "conference", "wildcard":
	default:
		fmt.Fprintln(out, "Invalid format. Use 'conference', 'wildcard', or 'league'")
		return nil
	}

	entries, err := v.Provider.Standings(ctx)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "league":
		v.renderLeague(out, entries)
	case "conference":
		v.renderConference(out, entries)
	default:
		v.renderWildCard(out, entries)
	}
	return nil
}

func (v *Standings) renderLeague(out io.Writer, entries []domain.StandingsEntry) {
	sep := separator("-", scoreTableWidth)

	fmt.Fprintf(out, "\n%s\n", sep)
	fmt.Fprintln(out, center("NHL STANDINGS", scoreTableWidth))
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, standingsHeader())

	for _, team := range domain.SortByPointsDesc(entries) {
		fmt.Fprintln(out, standingsRow(team))
	}
}

func (v *Standings) renderConference(out io.Writer, entries []domain.StandingsEntry) {
	sep := separator("-", scoreTableWidth)
	groups := domain.GroupByConference(entries)

	for _, conference := range domain.ConferenceNames(groups) {
		fmt.Fprintf(out, "\n%s\n", sep)
		fmt.Fprintln(out, center(strings.ToUpper(conference), scoreTableWidth))
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, standingsHeader())

		for _, team := range domain.SortByPointsDesc(groups[conference]) {
			fmt.Fprintln(out, standingsRow(team))
		}
	}
}

func (v *Standings) renderWildCard(out io.Writer, entries []domain.StandingsEntry) {
	sep := separator("-", scoreTableWidth)

	for _, conference := range domain.WildCardStandings(entries) {
		fmt.Fprintf(out, "\n%s\n", sep)
		fmt.Fprintln(out, center(strings.ToUpper(conference.Conference)+" CONFERENCE", scoreTableWidth))
		fmt.Fprintln(out, sep)

		for _, division := range conference.Divisions {
			fmt.Fprintf(out, "\n%s\n", boldStyle.Sprintf("%s Division", division.Name))
			fmt.Fprintln(out, standingsHeader())
			for _, team := range division.Leaders {
				fmt.Fprintln(out, standingsRow(team))
			}
		}

		fmt.Fprintf(out, "\n%s\n", boldStyle.Sprint("Wild Card"))
		fmt.Fprintln(out, standingsHeader())
		for i, team := range conference.WildCard {
			if i == domain.WildCardSlots {
				fmt.Fprintln(out, sep)
			}
			fmt.Fprintln(out, standingsRow(team))
		}
	}
}

func standingsHeader() string {
	header := fmt.Sprintf("%-22s %3s %3s %3s %3s %3s %6s",
		"Team", "GP", "W", "L", "OTL", "PTS", "PCT")
	return headerStyle.Sprint(header)
}

// standingsRow is the one shared row formatter: team name left-aligned,
// every stat right-justified, point percentage to 3 decimals.
func standingsRow(team domain.StandingsEntry) string {
	points := boldStyle.Sprint(fmt.Sprintf("%3d", team.Points))
	return fmt.Sprintf("%-22s %3d %3d %3d %3d %s %6.3f",
		team.TeamName, team.GamesPlayed, team.Wins, team.Losses,
		team.OTLosses, points, team.PointPct)
}
