package model

import (
	"fmt"
	"strings"
)

// Stat keys used in the raw stat maps. Weekly rows, seasonal rows and the
// scoring maps all share this vocabulary.
const (
	StatPassingYards   = "passing_yards"
	StatPassingTDs     = "passing_tds"
	StatInterceptions  = "interceptions"
	StatRushingYards   = "rushing_yards"
	StatRushingTDs     = "rushing_tds"
	StatReceptions     = "receptions"
	StatTargets        = "targets"
	StatReceivingYards = "receiving_yards"
	StatReceivingTDs   = "receiving_tds"
	StatFumblesLost    = "fumbles_lost"
)

// NameKey normalizes a player name the way the ADP feed keys its lookup
// table: lower case, spaces as underscores, common suffixes stripped.
func NameKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(TrimNameSuffix(name)), " ", "_")
}

// PlayerKey is the deduplication key for the aggregation step. Two rows
// describe the same player iff they agree on (name, position).
func PlayerKey(name string, pos Position) string {
	return fmt.Sprintf("%s_%s", NameKey(name), strings.ToLower(string(pos)))
}

// TrimNameSuffix takes a full name like "Deebo Samuel Sr." and returns
// "Deebo Samuel".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{"Jr.", "Sr.", "II", "III", "IV", "V"}
	fullName = strings.TrimSpace(fullName)
	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}
	return strings.TrimSpace(fullName)
}

// SeasonSummary is one aggregated record per (name, position) pair: the
// season totals from every contributing source row plus the heuristic
// scores layered on top.
type SeasonSummary struct {
	Key                string             `json:"-"`
	PlayerName         string             `json:"player_name"`
	Position           Position           `json:"position"`
	Team               string             `json:"team"`
	Season             int                `json:"season"`
	Status             string             `json:"status,omitempty"`
	YearsExp           int                `json:"years_exp"` // -1 when no roster row was seen
	GamesPlayed        int                `json:"games_played"`
	Stats              map[string]float64 `json:"stats"`
	FantasyPointsPPR   float64            `json:"fantasy_points_ppr"`
	FantasyPointsStd   float64            `json:"fantasy_points_standard"`
	PointsPerGame      float64            `json:"points_per_game"`
	ProjectedPointsPPR float64            `json:"projected_points_ppr"`
	ADPOverall         float64            `json:"adp_overall"`
	ADPPosition        int                `json:"adp_position"`
	ADPSource          string             `json:"adp_source"`
	ADPLastUpdated     string             `json:"adp_last_updated,omitempty"`
	RiskScore          float64            `json:"risk_score"`
	LastVerified       string             `json:"last_verified,omitempty"`
}

// InjuryReport is one row from the weekly injury report for a player.
type InjuryReport struct {
	PlayerName   string   `json:"player_name"`
	Position     Position `json:"position"`
	Team         string   `json:"team"`
	Season       int      `json:"season"`
	Week         int      `json:"week"`
	ReportStatus string   `json:"report_status"`
	Injury       string   `json:"injury,omitempty"`
}
