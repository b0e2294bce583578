package nhl

import "nhl-cli/internal/domain"

// Display defaults for fields the API may omit.
const (
	unknownName     = "Unknown"
	unknownDate     = "Unknown Date"
	unknownTeamDash = "---"
)

func mapScheduleDays(days []gameWeekDay) []domain.ScheduleDay {
	mapped := make([]domain.ScheduleDay, 0, len(days))
	for _, day := range days {
		games := make([]domain.Game, 0, len(day.Games))
		for _, g := range day.Games {
			games = append(games, mapGame(g))
		}
		mapped = append(mapped, domain.ScheduleDay{Date: day.Date, Games: games})
	}
	return mapped
}

func mapGame(g scheduleGame) domain.Game {
	return domain.Game{
		ID:        g.ID,
		AwayTeam:  mapScheduleTeam(g.AwayTeam),
		HomeTeam:  mapScheduleTeam(g.HomeTeam),
		State:     domain.MapGameState(g.GameState),
		StateCode: g.GameState,
	}
}

func mapScheduleTeam(t scheduleTeam) domain.TeamSide {
	return domain.TeamSide{
		Name:   orDefault(t.CommonName.Default, unknownName),
		Abbrev: t.Abbrev,
		Score:  t.Score,
	}
}

func mapStandings(teams []standingsTeam) []domain.StandingsEntry {
	entries := make([]domain.StandingsEntry, 0, len(teams))
	for _, t := range teams {
		entries = append(entries, domain.StandingsEntry{
			TeamName:    orDefault(t.TeamName.Default, unknownName),
			Conference:  orDefault(t.ConferenceName, unknownName),
			Division:    orDefault(t.DivisionName, unknownName),
			GamesPlayed: t.GamesPlayed,
			Wins:        t.Wins,
			Losses:      t.Losses,
			OTLosses:    t.OTLosses,
			Points:      t.Points,
			PointPct:    t.PointPctg,
		})
	}
	return entries
}

func mapLeaders(players []leaderPlayer) []domain.LeaderEntry {
	entries := make([]domain.LeaderEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, domain.LeaderEntry{
			FirstName: p.FirstName.Default,
			LastName:  p.LastName.Default,
			TeamName:  orDefault(p.TeamName.Default, unknownTeamDash),
			Value:     p.Value,
		})
	}
	return entries
}

func mapBoxScore(resp landingResponse) domain.BoxScore {
	scoring := make([]domain.PeriodScoring, 0, len(resp.Summary.Scoring))
	for _, period := range resp.Summary.Scoring {
		goals := make([]domain.GoalEvent, 0, len(period.Goals))
		for _, g := range period.Goals {
			goals = append(goals, mapGoal(g))
		}
		scoring = append(scoring, domain.PeriodScoring{Goals: goals})
	}

	return domain.BoxScore{
		AwayTeam:  mapLandingTeam(resp.AwayTeam),
		HomeTeam:  mapLandingTeam(resp.HomeTeam),
		GameDate:  orDefault(resp.GameDate, unknownDate),
		State:     domain.MapGameState(resp.GameState),
		StateCode: resp.GameState,
		Period:    resp.PeriodDescriptor.Number,
		Clock: domain.Clock{
			TimeRemaining:  resp.Clock.TimeRemaining,
			InIntermission: resp.Clock.InIntermission,
		},
		Scoring: scoring,
	}
}

func mapLandingTeam(t landingTeam) domain.TeamSide {
	return domain.TeamSide{
		Name:   orDefault(t.CommonName.Default, unknownName),
		Abbrev: t.Abbrev,
	}
}

func mapGoal(g landingGoal) domain.GoalEvent {
	assists := make([]domain.Assist, 0, len(g.Assists))
	for _, a := range g.Assists {
		assists = append(assists, domain.Assist{
			FirstName:     a.FirstName.Default,
			LastName:      a.LastName.Default,
			AssistsToDate: a.AssistsToDate,
		})
	}
	return domain.GoalEvent{
		TimeInPeriod: orDefault(g.TimeInPeriod, "00:00"),
		TeamAbbrev:   g.TeamAbbrev.Default,
		FirstName:    g.FirstName.Default,
		LastName:     g.LastName.Default,
		GoalsToDate:  g.GoalsToDate,
		Assists:      assists,
	}
}

func mapPlayerProfile(p playerLanding) domain.PlayerProfile {
	return domain.PlayerProfile{
		FirstName:   p.FirstName.Default,
		LastName:    p.LastName.Default,
		CareerGoals: p.FeaturedStats.RegularSeason.Career.Goals,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
