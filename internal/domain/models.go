package domain

// GameState mirrors the lifecycle states the NHL API reports as short codes.
type GameState string

const (
	StateScheduled  GameState = "SCHEDULED"
	StatePregame    GameState = "PREGAME"
	StateLive       GameState = "LIVE"
	StateFinal      GameState = "FINAL"
	StateFinalOther GameState = "FINAL_OTHER"
)

// MapGameState converts an upstream short code into a GameState.
// Unknown codes fold into StateScheduled; callers that need the raw code
// for display keep StateCode alongside.
func MapGameState(code string) GameState {
	switch code {
	case "LIVE":
		return StateLive
	case "FINAL":
		return StateFinal
	case "OFF":
		return StateFinalOther
	case "PRE":
		return StatePregame
	default:
		return StateScheduled
	}
}

// TeamSide is one side of a game: display name, abbreviation, and score.
type TeamSide struct {
	Name   string
	Abbrev string
	Score  int
}

// Game is one scheduled or played game within a schedule window.
type Game struct {
	ID        int
	AwayTeam  TeamSide
	HomeTeam  TeamSide
	State     GameState
	StateCode string
}

// ScheduleDay is one calendar day's worth of games.
type ScheduleDay struct {
	Date  string // YYYY-MM-DD
	Games []Game
}

// StandingsEntry is one team's row in a standings snapshot.
type StandingsEntry struct {
	TeamName    string
	Conference  string
	Division    string
	GamesPlayed int
	Wins        int
	Losses      int
	OTLosses    int
	Points      int
	PointPct    float64
}

// LeaderEntry is one player's row on a statistical leaderboard. Value's
// meaning depends on the requested category.
type LeaderEntry struct {
	FirstName string
	LastName  string
	TeamName  string
	Value     float64
}

// Clock is the live-game clock state.
type Clock struct {
	TimeRemaining  string
	InIntermission bool
}

// Assist credits one player on a goal with their season assist tally.
type Assist struct {
	FirstName     string
	LastName      string
	AssistsToDate int
}

// GoalEvent is a single scoring play.
type GoalEvent struct {
	TimeInPeriod string
	TeamAbbrev   string
	FirstName    string
	LastName     string
	GoalsToDate  int
	Assists      []Assist
}

// PeriodScoring is one period bucket (regulation, overtime, or shootout)
// of goal events in arrival order.
type PeriodScoring struct {
	Goals []GoalEvent
}

// BoxScore is the detailed landing data for a single game.
type BoxScore struct {
	AwayTeam  TeamSide
	HomeTeam  TeamSide
	GameDate  string // YYYY-MM-DD
	State     GameState
	StateCode string
	Period    int
	Clock     Clock
	Scoring   []PeriodScoring
}

// PlayerProfile is the slice of a player landing page the tool consumes.
type PlayerProfile struct {
	FirstName   string
	LastName    string
	CareerGoals int
}
