package nhl

import "encoding/json"

// The NHL API wraps most display strings in a localization object; only
// the default rendering is consumed here.
type nameDefault struct {
	Default string `json:"default"`
}

type scheduleResponse struct {
	GameWeek json.RawMessage `json:"gameWeek"`
}

type gameWeekDay struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID        int          `json:"id"`
	GameState string       `json:"gameState"`
	AwayTeam  scheduleTeam `json:"awayTeam"`
	HomeTeam  scheduleTeam `json:"homeTeam"`
}

type scheduleTeam struct {
	CommonName nameDefault `json:"commonName"`
	Abbrev     string      `json:"abbrev"`
	Score      int         `json:"score"`
}

type standingsResponse struct {
	Standings json.RawMessage `json:"standings"`
}

type standingsTeam struct {
	TeamName       nameDefault `json:"teamName"`
	ConferenceName string      `json:"conferenceName"`
	DivisionName   string      `json:"divisionName"`
	GamesPlayed    int         `json:"gamesPlayed"`
	Wins           int         `json:"wins"`
	Losses         int         `json:"losses"`
	OTLosses       int         `json:"otLosses"`
	Points         int         `json:"points"`
	PointPctg      float64     `json:"pointPctg"`
}

// Leaders endpoints return one array per statistical category keyed by
// the category's field name; the shape of each element is common.
type leadersResponse map[string]json.RawMessage

type leaderPlayer struct {
	FirstName nameDefault `json:"firstName"`
	LastName  nameDefault `json:"lastName"`
	TeamName  nameDefault `json:"teamName"`
	Value     float64     `json:"value"`
}

type landingResponse struct {
	AwayTeam         landingTeam      `json:"awayTeam"`
	HomeTeam         landingTeam      `json:"homeTeam"`
	GameDate         string           `json:"gameDate"`
	GameState        string           `json:"gameState"`
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Clock            clockState       `json:"clock"`
	Summary          landingSummary   `json:"summary"`
}

type landingTeam struct {
	CommonName nameDefault `json:"commonName"`
	Abbrev     string      `json:"abbrev"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type clockState struct {
	TimeRemaining  string `json:"timeRemaining"`
	InIntermission bool   `json:"inIntermission"`
}

type landingSummary struct {
	Scoring []scoringPeriod `json:"scoring"`
}

type scoringPeriod struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Goals            []landingGoal    `json:"goals"`
}

type landingGoal struct {
	TimeInPeriod string          `json:"timeInPeriod"`
	TeamAbbrev   nameDefault     `json:"teamAbbrev"`
	FirstName    nameDefault     `json:"firstName"`
	LastName     nameDefault     `json:"lastName"`
	GoalsToDate  int             `json:"goalsToDate"`
	Assists      []landingAssist `json:"assists"`
}

type landingAssist struct {
	FirstName     nameDefault `json:"firstName"`
	LastName      nameDefault `json:"lastName"`
	AssistsToDate int         `json:"assistsToDate"`
}

type playerLanding struct {
	FirstName     nameDefault   `json:"firstName"`
	LastName      nameDefault   `json:"lastName"`
	FeaturedStats featuredStats `json:"featuredStats"`
}

type featuredStats struct {
	RegularSeason seasonStats `json:"regularSeason"`
}

type seasonStats struct {
	Career careerTotals `json:"career"`
}

type careerTotals struct {
	Goals int `json:"goals"`
}
