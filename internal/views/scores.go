package views

import (
	"context"
	"fmt"
	"io"
	"time"

	"nhl-cli/internal/domain"
	"nhl-cli/internal/timeutil"
)

// Scores renders the recent schedule window: one block per day, one row
// per game, winning side highlighted.
type Scores struct {
	Provider ScheduleProvider
	Out      io.Writer
	Now      func() time.Time
}

// Render fetches the window anchored at yesterday and prints up to three
// day blocks in API order.
func (v *Scores) Render(ctx context.Context) error {
	out := resolveOut(v.Out)

	date := timeutil.DaysAgo(resolveNow(v.Now), scoresLookbackDays)
	days, err := v.Provider.Schedule(ctx, date)
	if err != nil {
		return err
	}

	sep := separator("-", scoreTableWidth)
	for i, day := range days {
		if i >= scheduleDaysShown {
			break
		}

		fmt.Fprintf(out, "\n%s\n", sep)
		fmt.Fprintln(out, center(timeutil.DisplayDate(day.Date), scoreTableWidth))
		fmt.Fprintln(out, sep)

		if len(day.Games) == 0 {
			fmt.Fprintln(out, center("No games scheduled for today", scoreTableWidth))
			continue
		}

		for _, game := range day.Games {
			fmt.Fprintln(out, scoreLine(game))
		}
	}
	return nil
}

// scoreLine renders one game in fixed "away vs home" order, highlighting
// the strictly leading side. Padding happens before colorizing so escape
// codes never skew column widths.
func scoreLine(game domain.Game) string {
	away := fmt.Sprintf("%18s", game.AwayTeam.Name)
	awayScore := fmt.Sprintf("%2d", game.AwayTeam.Score)
	homeScore := fmt.Sprintf("%-2d", game.HomeTeam.Score)
	home := game.HomeTeam.Name

	switch {
	case game.AwayTeam.Score > game.HomeTeam.Score:
		away = winnerStyle.Sprint(away)
		awayScore = winnerStyle.Sprint(awayScore)
	case game.HomeTeam.Score > game.AwayTeam.Score:
		homeScore = winnerStyle.Sprint(homeScore)
		home = winnerStyle.Sprint(home)
	}

	return fmt.Sprintf("%s %s vs %s %s", away, awayScore, homeScore, home)
}
