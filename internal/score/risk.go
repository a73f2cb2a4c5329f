package score

import (
	"math"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

// Injury-report weights for the risk score. "Out" listings hurt the most.
var reportStatusWeights = map[string]float64{
	"Out":          15,
	"Doubtful":     10,
	"Questionable": 5,
}

const (
	baseRisk        = 25
	missedTimeRisk  = 20
	missedTimeFloor = 10 // games played below this adds missedTimeRisk

	// Experience volatility: rookies have no track record, long-tenured
	// veterans decline unpredictably. Mid-career players get no bump.
	experienceRisk = 10
	rookieMaxExp   = 1
	veteranMinExp  = 10
)

// RiskScore combines injury-report history, missed games and career-stage
// volatility into a 0-100 score. More listings, fewer games played and a
// rookie or late-career profile all mean more risk. YearsExp below zero
// means no roster row was seen and contributes nothing.
func RiskScore(s *model.SeasonSummary, reports []model.InjuryReport) float64 {
	risk := float64(baseRisk)

	for _, r := range reports {
		if w, ok := reportStatusWeights[r.ReportStatus]; ok {
			risk += w
		}
	}

	if s.GamesPlayed > 0 && s.GamesPlayed < missedTimeFloor {
		risk += missedTimeRisk
	}

	if s.YearsExp >= 0 && (s.YearsExp <= rookieMaxExp || s.YearsExp >= veteranMinExp) {
		risk += experienceRisk
	}

	return math.Max(0, math.Min(100, risk))
}
