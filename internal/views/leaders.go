package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nhl-cli/internal/domain"
)

// Entries printed per leaderboard.
const leadersLimit = 20

// category binds a user-facing keyword to a leaderboard: display title,
// the JSON field holding the category's array, the value column label,
// and which endpoint serves it.
type category struct {
	Title  string
	Field  string
	Label  string
	Goalie bool
}

var categories = map[string]category{
	// Skaters
	"points":          {Title: "Player Points Leaders", Field: "points", Label: "Points"},
	"goals":           {Title: "Player Goal Leaders", Field: "goals", Label: "Goals"},
	"assists":         {Title: "Player Assist Leaders", Field: "assists", Label: "Assists"},
	"time-on-ice":     {Title: "Player Time On Ice Leaders", Field: "toi", Label: "Time On Ice"},
	"plus-minus":      {Title: "Player Plus Minus Leaders", Field: "plusMinus", Label: "Plus Minus"},
	"penalty-minutes": {Title: "Player Penalty Minutes Leaders", Field: "penaltyMins", Label: "Minutes"},
	"faceoffs":        {Title: "Player Faceoff Leaders", Field: "faceoffLeaders", Label: "Faceoffs"},
	// Goalies
	"save-percentage":       {Title: "Goalie Save Percentage Leaders", Field: "savePctg", Label: "Save %", Goalie: true},
	"goals-against-average": {Title: "Goalie Goals Against Average Leaders", Field: "goalsAgainstAverage", Label: "GAA", Goalie: true},
	"shutouts":              {Title: "Goalie Shutouts Leaders", Field: "shutouts", Label: "Shutouts", Goalie: true},
	"wins":                  {Title: "Goalie Wins Leaders", Field: "wins", Label: "Wins", Goalie: true},
}

// Short spellings accepted alongside the canonical keywords.
var categoryAliases = map[string]string{
	"toi":               "time-on-ice",
	"goals-against-avg": "goals-against-average",
}

// Leaders renders a top-20 statistical leaderboard for one category.
type Leaders struct {
	Provider LeadersProvider
	Out      io.Writer
}

// Render prints the leaderboard for the given category keyword. An
// unrecognized keyword prints a usage hint and returns nil.
func (v *Leaders) Render(ctx context.Context, keyword string) error {
	out := resolveOut(v.Out)

	key := strings.ToLower(keyword)
	if canonical, ok := categoryAliases[key]; ok {
		key = canonical
	}
	cat, ok := categories[key]
	if !ok {
		fmt.Fprintln(out, "Invalid category. Use 'points', 'goals', or 'assists'")
		return nil
	}

	var entries []domain.LeaderEntry
	var err error
	if cat.Goalie {
		entries, err = v.Provider.GoalieLeaders(ctx, cat.Field)
	} else {
		entries, err = v.Provider.SkaterLeaders(ctx, cat.Field)
	}
	if err != nil {
		return err
	}

	// The API does not guarantee ordering within a category.
	entries = domain.TopN(domain.SortLeadersDesc(entries), leadersLimit)

	sep := separator("-", leadersTableWidth)
	fmt.Fprintf(out, "\n%s\n", sep)
	fmt.Fprintln(out, boldStyle.Sprint(center(cat.Title, leadersTableWidth)))
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "%-4s %-25s %-20s %8s\n", "Rank", "Player", "Team", cat.Label)
	fmt.Fprintln(out, sep)

	for i, entry := range entries {
		name := entry.FirstName + " " + entry.LastName
		value := winnerStyle.Sprint(fmt.Sprintf("%8s", formatValue(cat.Field, entry.Value)))
		fmt.Fprintf(out, "%-4d %-25s %-20s %s\n", i+1, name, entry.TeamName, value)
	}
	return nil
}

// formatValue renders a category value: save percentage as a percent with
// two decimals, time on ice in minutes, everything else as a plain number.
func formatValue(field string, value float64) string {
	switch field {
	case "savePctg":
		return fmt.Sprintf("%.2f%%", value*100)
	case "toi":
		return fmt.Sprintf("%.2fm", value)
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}
