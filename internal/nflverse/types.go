package nflverse

import "github.com/jamesexley/fantasy-football-go/internal/model"

// RosterRow is one current-team-assignment row.
type RosterRow struct {
	Season   int
	Team     string
	Position model.Position
	Status   string
	FullName string
	YearsExp int
}

// WeeklyRow is one per-week performance row.
type WeeklyRow struct {
	PlayerName string
	Position   model.Position
	Team       string
	Season     int
	Week       int
	Stats      map[string]float64
}

// SeasonalRow is one per-season totals row.
type SeasonalRow struct {
	PlayerName string
	Position   model.Position
	Team       string
	Season     int
	Games      int
	Stats      map[string]float64
}
