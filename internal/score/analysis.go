package score

import (
	"fmt"
	"math"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

// Category cutoffs for the draft analysis.
const (
	MustStartScore   = 140
	SleeperFloor     = 95
	SleeperCeiling   = 115
	BustADPGap       = -20
	undraftedADP     = 999
	defaultProjected = 100
)

type Category string

const (
	CategoryMustStart Category = "must_start"
	CategorySleeper   Category = "sleeper"
	CategoryBust      Category = "bust"
	CategoryDepth     Category = "depth"
)

// positionMultipliers weight positional scarcity into the analysis score.
var positionMultipliers = map[model.Position]float64{
	model.PosQB: 1.0,
	model.PosRB: 1.2,
	model.PosWR: 1.1,
	model.PosTE: 1.3,
}

// teamAdjustments reward strong offensive situations. RETIRED zeroes a
// player out entirely.
var teamAdjustments = map[string]float64{
	"KC":      10,
	"BUF":     8,
	"SF":      8,
	"NYJ":     5,
	"RETIRED": -999,
}

// Components breaks the analysis score down for the output file.
type Components struct {
	BaseProjection     float64 `json:"base_projection"`
	ADPValue           float64 `json:"adp_value"`
	PositionMultiplier float64 `json:"position_multiplier"`
	TeamAdjustment     float64 `json:"team_adjustment"`
	FinalScore         float64 `json:"final_score"`
}

// Analysis is the per-player result of the scoring heuristic.
type Analysis struct {
	Score            float64    `json:"score"`
	CategoryReason   string     `json:"category_reason"`
	ADPVsProjection  float64    `json:"adp_vs_projection"`
	Components       Components `json:"components"`
}

// Analyze scores one player: projection plus ADP value, scaled by position
// scarcity, shifted by team situation.
func Analyze(s *model.SeasonSummary) Analysis {
	adp := s.ADPOverall
	if adp <= 0 {
		adp = undraftedADP
	}
	projected := s.ProjectedPointsPPR
	if projected == 0 {
		projected = defaultProjected
	}

	adpValue := math.Max(200-adp, 0) * 0.3

	multiplier, ok := positionMultipliers[s.Position]
	if !ok {
		multiplier = 1.0
	}
	adjustment := teamAdjustments[s.Team]

	finalScore := (projected+adpValue)*multiplier + adjustment

	reason := fmt.Sprintf("Solid %s option for depth", s.Position)
	switch {
	case finalScore >= MustStartScore:
		reason = fmt.Sprintf("Elite %s with excellent ADP value and strong team situation", s.Position)
	case finalScore >= SleeperFloor && finalScore < SleeperCeiling:
		reason = fmt.Sprintf("Undervalued %s with breakout potential", s.Position)
	}

	if s.Team == "RETIRED" {
		finalScore = 0
		reason = "Player has retired - do not draft"
	}

	return Analysis{
		Score:           math.Round(finalScore*10) / 10,
		CategoryReason:  reason,
		ADPVsProjection: projected - (200 - adp),
		Components: Components{
			BaseProjection:     projected,
			ADPValue:           math.Round(adpValue*10) / 10,
			PositionMultiplier: multiplier,
			TeamAdjustment:     adjustment,
			FinalScore:         math.Round(finalScore*10) / 10,
		},
	}
}

// Categorize buckets an analysis result into the draft-guide categories.
func Categorize(a Analysis) Category {
	switch {
	case a.Score >= MustStartScore:
		return CategoryMustStart
	case a.Score >= SleeperFloor && a.Score < SleeperCeiling:
		return CategorySleeper
	case a.ADPVsProjection < BustADPGap:
		return CategoryBust
	default:
		return CategoryDepth
	}
}
