package teststubs

import (
	"context"
	"sync/atomic"

	"nhl-cli/internal/domain"
)

// StubProvider is a test double for the view provider interfaces. It
// returns canned domain values and records what was asked of it.
type StubProvider struct {
	Days        []domain.ScheduleDay
	ScheduleErr error

	StandingsEntries []domain.StandingsEntry
	StandingsErr     error

	Leaders    []domain.LeaderEntry
	LeadersErr error

	Box    domain.BoxScore
	BoxErr error

	Profile    domain.PlayerProfile
	ProfileErr error

	Calls atomic.Int32

	ScheduleDates []string
	SkaterFields  []string
	GoalieFields  []string
	BoxGameIDs    []int
	PlayerIDs     []int
}

// Schedule returns the configured schedule window, recording the date.
func (s *StubProvider) Schedule(ctx context.Context, date string) ([]domain.ScheduleDay, error) {
	_ = ctx
	s.Calls.Add(1)
	s.ScheduleDates = append(s.ScheduleDates, date)
	return s.Days, s.ScheduleErr
}

// Standings returns the configured standings snapshot.
func (s *StubProvider) Standings(ctx context.Context) ([]domain.StandingsEntry, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.StandingsEntries, s.StandingsErr
}

// SkaterLeaders returns the configured leaderboard, recording the field.
func (s *StubProvider) SkaterLeaders(ctx context.Context, field string) ([]domain.LeaderEntry, error) {
	_ = ctx
	s.Calls.Add(1)
	s.SkaterFields = append(s.SkaterFields, field)
	return s.Leaders, s.LeadersErr
}

// GoalieLeaders returns the configured leaderboard, recording the field.
func (s *StubProvider) GoalieLeaders(ctx context.Context, field string) ([]domain.LeaderEntry, error) {
	_ = ctx
	s.Calls.Add(1)
	s.GoalieFields = append(s.GoalieFields, field)
	return s.Leaders, s.LeadersErr
}

// GameLanding returns the configured box score, recording the game ID.
func (s *StubProvider) GameLanding(ctx context.Context, gameID int) (domain.BoxScore, error) {
	_ = ctx
	s.Calls.Add(1)
	s.BoxGameIDs = append(s.BoxGameIDs, gameID)
	return s.Box, s.BoxErr
}

// PlayerLanding returns the configured profile, recording the player ID.
func (s *StubProvider) PlayerLanding(ctx context.Context, playerID int) (domain.PlayerProfile, error) {
	_ = ctx
	s.Calls.Add(1)
	s.PlayerIDs = append(s.PlayerIDs, playerID)
	return s.Profile, s.ProfileErr
}
