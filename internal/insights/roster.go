package insights

import "github.com/jamesexley/fantasy-football-go/internal/model"

// Correction is the result of a roster verification check.
type Correction struct {
	Updated       bool
	CurrentTeam   string
	Status        string
	FantasyImpact string
}

// knownCorrections covers team changes the upstream feeds have not picked up
// yet. Keyed by the player's normalized name.
var knownCorrections = map[string]Correction{
	"justin_fields": {
		Updated:       true,
		CurrentTeam:   "NYJ",
		Status:        "starting_qb",
		FantasyImpact: "Positive - Starting opportunity with Jets increases value",
	},
	"mike_williams": {
		Updated:       true,
		CurrentTeam:   "RETIRED",
		Status:        "retired",
		FantasyImpact: "Critical - Player retired, remove from all analysis",
	},
}

// ShouldVerifyRoster decides whether a player's team assignment is worth
// re-checking. High-value players and free agents are where stale team data
// costs the most.
func ShouldVerifyRoster(p *model.SeasonSummary) bool {
	adp := p.ADPOverall
	if adp <= 0 {
		adp = 999
	}

	// Top ~100 picks always get checked.
	if adp <= 100 {
		return true
	}

	switch p.Position {
	case model.PosQB, model.PosRB, model.PosWR:
		if adp <= 150 {
			return true
		}
	}

	return p.Team == model.TeamFA || p.Team == ""
}

// VerifyRoster checks a player against the known-corrections table. Players
// not in the table verify clean.
func VerifyRoster(p *model.SeasonSummary) Correction {
	if c, ok := knownCorrections[model.NameKey(p.PlayerName)]; ok {
		return c
	}
	return Correction{
		Updated:       false,
		CurrentTeam:   p.Team,
		FantasyImpact: "No change detected",
	}
}
