package domain

import "fmt"

// Per-period columns in the normalized scoring grid: three regulation
// periods plus a single combined OT/shootout column.
const GridColumns = 4

// ScoreGrid is the normalized period-by-period scoring summary.
type ScoreGrid struct {
	Away      [GridColumns]int
	Home      [GridColumns]int
	AwayTotal int
	HomeTotal int
}

// SummaryGrid tallies goal events into the fixed 4-column grid. A goal
// belongs to the away side when its team abbreviation matches awayAbbrev;
// everything else counts for home. Regulation-only games gain a zero OT
// column, and a shootout bucket folds into the OT column rather than
// widening the grid.
func SummaryGrid(scoring []PeriodScoring, awayAbbrev string) ScoreGrid {
	var grid ScoreGrid
	for i, period := range scoring {
		col := i
		if col >= GridColumns {
			col = GridColumns - 1
		}
		for _, goal := range period.Goals {
			if goal.TeamAbbrev == awayAbbrev {
				grid.Away[col]++
			} else {
				grid.Home[col]++
			}
		}
	}
	for col := 0; col < GridColumns; col++ {
		grid.AwayTotal += grid.Away[col]
		grid.HomeTotal += grid.Home[col]
	}
	return grid
}

// PeriodSectionLabel names a raw period bucket for the scoring-play log:
// "Period N" for regulation, then "Overtime" and "Shootout".
func PeriodSectionLabel(index int) string {
	switch {
	case index < 3:
		return fmt.Sprintf("Period %d", index+1)
	case index == 3:
		return "Overtime"
	default:
		return "Shootout"
	}
}
