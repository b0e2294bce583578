package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nhl-cli/internal/domain"
	"nhl-cli/internal/timeutil"
)

// BoxScore renders a single game's detailed summary: header and status,
// the normalized period-by-period grid, and the scoring-play log.
type BoxScore struct {
	Provider BoxScoreProvider
	Out      io.Writer
}

// Render fetches the game landing data and prints the box score.
func (v *BoxScore) Render(ctx context.Context, gameID int) error {
	out := resolveOut(v.Out)

	box, err := v.Provider.GameLanding(ctx, gameID)
	if err != nil {
		return err
	}

	renderBoxHeader(out, box)
	renderScoringSummary(out, box)
	renderScoringPlays(out, box)
	return nil
}

func renderBoxHeader(out io.Writer, box domain.BoxScore) {
	sep := separator("=", boxTableWidth)

	fmt.Fprintf(out, "\n%s\n", sep)
	title := fmt.Sprintf("%s @ %s", box.AwayTeam.Name, box.HomeTeam.Name)
	fmt.Fprintln(out, boldStyle.Sprint(center(title, boxTableWidth)))
	fmt.Fprintln(out, center(timeutil.DisplayDate(box.GameDate), boxTableWidth))
	fmt.Fprintln(out, boldStyle.Sprint(center(statusLine(box), boxTableWidth)))
	fmt.Fprintln(out, sep)
}

// statusLine derives the header status from the game state. Live games
// show the period label and clock; finished games show "Final" with an
// overtime/shootout suffix; unknown codes pass through raw.
func statusLine(box domain.BoxScore) string {
	switch box.StateCode {
	case "LIVE":
		label := "Period"
		if box.Clock.InIntermission {
			label = "Intermission"
		}
		if box.Period == 4 {
			label = "Overtime"
		}
		if box.Period == 5 {
			label = "Shootout"
		}
		return fmt.Sprintf("%s %s - %s", label, periodDisplay(box.Period), box.Clock.TimeRemaining)
	case "FINAL", "OFF":
		switch box.Period {
		case 4:
			return "Final - Overtime"
		case 5:
			return "Final - Shootout"
		}
		return "Final"
	case "PRE":
		return "Pre-Game"
	case "FUT":
		return "Game Scheduled"
	default:
		return box.StateCode
	}
}

func periodDisplay(period int) string {
	switch period {
	case 4:
		return "OT"
	case 5:
		return "OT/SO"
	default:
		return strconv.Itoa(period)
	}
}

func renderScoringSummary(out io.Writer, box domain.BoxScore) {
	fmt.Fprintf(out, "\n%s\n", boldStyle.Sprint(center("SCORING SUMMARY", boxTableWidth)))
	fmt.Fprintln(out, separator("-", boxTableWidth))
	fmt.Fprintf(out, "%20s %8s %8s %8s %8s %8s\n", "", "1st", "2nd", "3rd", "OT", "Final")

	grid := domain.SummaryGrid(box.Scoring, box.AwayTeam.Abbrev)
	fmt.Fprintln(out, gridRow(box.AwayTeam.Name, grid.Away, grid.AwayTotal))
	fmt.Fprintln(out, gridRow(box.HomeTeam.Name, grid.Home, grid.HomeTotal))
}

func gridRow(team string, periods [domain.GridColumns]int, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%20s", team)
	for _, goals := range periods {
		fmt.Fprintf(&b, " %8d", goals)
	}
	fmt.Fprintf(&b, " %8d", total)
	return b.String()
}

// renderScoringPlays walks the raw period buckets, not the normalized
// grid, so a shootout keeps its own section.
func renderScoringPlays(out io.Writer, box domain.BoxScore) {
	fmt.Fprintf(out, "\n%s\n", boldStyle.Sprint(center("SCORING PLAYS", boxTableWidth)))
	fmt.Fprintln(out, separator("-", boxTableWidth))

	for i, period := range box.Scoring {
		fmt.Fprintf(out, "\n%s\n", boldStyle.Sprint(domain.PeriodSectionLabel(i)))

		if len(period.Goals) == 0 {
			fmt.Fprintln(out, "No goals scored in this period")
			continue
		}
		for _, goal := range period.Goals {
			fmt.Fprintln(out, goalLine(goal))
		}
	}
}

func goalLine(goal domain.GoalEvent) string {
	scorer := fmt.Sprintf("%s %s (%d)", goal.FirstName, goal.LastName, goal.GoalsToDate)

	assistText := "Unassisted"
	if len(goal.Assists) > 0 {
		parts := make([]string, 0, len(goal.Assists))
		for _, a := range goal.Assists {
			parts = append(parts, fmt.Sprintf("%s %s (%d)", a.FirstName, a.LastName, a.AssistsToDate))
		}
		assistText = "Assists: " + strings.Join(parts, ", ")
	}

	return fmt.Sprintf("%s %s - %s (%s)", goal.TimeInPeriod, goal.TeamAbbrev, scorer, assistText)
}
