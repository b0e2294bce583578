package views

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/manifoldco/promptui"

	"nhl-cli/internal/domain"
	"nhl-cli/internal/timeutil"
)

// SelectFunc presents a single-choice menu and returns the chosen index.
// Abstracted so tests can drive the picker without a terminal.
type SelectFunc func(label string, items []string) (int, error)

// GamePicker lists recent games, prompts for one, and hands the chosen
// game ID to the box score view.
type GamePicker struct {
	Provider ScheduleProvider
	BoxScore *BoxScore
	Out      io.Writer
	Now      func() time.Time
	Select   SelectFunc
}

// Render builds the selectable game list from a two-day lookback window
// and launches the prompt. No games found is not an error; a canceled
// prompt is.
func (v *GamePicker) Render(ctx context.Context) error {
	out := resolveOut(v.Out)

	date := timeutil.DaysAgo(resolveNow(v.Now), pickerLookbackDays)
	days, err := v.Provider.Schedule(ctx, date)
	if err != nil {
		return err
	}

	var gameIDs []int
	var items []string
	for i, day := range days {
		if i >= scheduleDaysShown {
			break
		}
		weekday := timeutil.Weekday(day.Date)
		for _, game := range day.Games {
			gameIDs = append(gameIDs, game.ID)
			items = append(items, pickerLine(weekday, game))
		}
	}

	// Most recent games first.
	reverseInts(gameIDs)
	reverseStrings(items)

	if len(items) == 0 {
		fmt.Fprintln(out, "No games found")
		return nil
	}

	selectFn := v.Select
	if selectFn == nil {
		selectFn = promptSelect
	}
	choice, err := selectFn("Select a game to view details", items)
	if err != nil {
		return fmt.Errorf("game selection failed: %w", err)
	}

	return v.BoxScore.Render(ctx, gameIDs[choice])
}

func pickerLine(weekday string, game domain.Game) string {
	return fmt.Sprintf("%-10s %18s %2d vs %-2d %-18s %-10s  ",
		weekday,
		game.AwayTeam.Name, game.AwayTeam.Score,
		game.HomeTeam.Score, game.HomeTeam.Name,
		pickerStatus(game))
}

func pickerStatus(game domain.Game) string {
	switch game.StateCode {
	case "LIVE":
		return "LIVE"
	case "FINAL", "OFF":
		return "Final"
	case "FUT":
		return "Future"
	default:
		return game.StateCode
	}
}

func promptSelect(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  12,
	}
	index, _, err := prompt.Run()
	return index, err
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
