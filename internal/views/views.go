// Package views renders league data as formatted terminal tables. Each
// view fetches through a narrow provider interface, transforms locally,
// and writes to an injected io.Writer.
package views

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"nhl-cli/internal/domain"
)

// Schedule windows anchor in the past so finished games stay visible.
// The scores view wants the freshest window; the picker reaches further
// back so completed games are selectable. Kept as independent constants.
const (
	scoresLookbackDays = 1
	pickerLookbackDays = 2
)

// Day buckets consumed from a schedule window, regardless of how many
// the API returns.
const scheduleDaysShown = 3

// Table widths, matching the fixed column layouts of each view.
const (
	scoreTableWidth   = 52
	leadersTableWidth = 60
	boxTableWidth     = 70
)

var (
	winnerStyle = color.New(color.FgGreen, color.Bold)
	boldStyle   = color.New(color.Bold)
	headerStyle = color.New(color.Bold, color.Underline)
)

// ScheduleProvider fetches a multi-day schedule window anchored at a
// YYYY-MM-DD date.
type ScheduleProvider interface {
	Schedule(ctx context.Context, date string) ([]domain.ScheduleDay, error)
}

// StandingsProvider fetches the current standings snapshot.
type StandingsProvider interface {
	Standings(ctx context.Context) ([]domain.StandingsEntry, error)
}

// LeadersProvider fetches statistical leaderboards by category field.
type LeadersProvider interface {
	SkaterLeaders(ctx context.Context, field string) ([]domain.LeaderEntry, error)
	GoalieLeaders(ctx context.Context, field string) ([]domain.LeaderEntry, error)
}

// BoxScoreProvider fetches one game's detailed landing data.
type BoxScoreProvider interface {
	GameLanding(ctx context.Context, gameID int) (domain.BoxScore, error)
}

// PlayerProvider fetches a player's landing page.
type PlayerProvider interface {
	PlayerLanding(ctx context.Context, playerID int) (domain.PlayerProfile, error)
}

// center pads s with spaces to width, extra space going to the right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func separator(ch string, width int) string {
	return strings.Repeat(ch, width)
}

func resolveOut(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return os.Stdout
}

func resolveNow(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now()
}
