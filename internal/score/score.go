// Package score holds the scoring maps and the heuristic formulas layered on
// top of the aggregated season summaries. The constants are tunable business
// rules, not contracts.
package score

import (
	"math"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

// PPRScoring is the points-per-reception scoring map.
var PPRScoring = map[string]float64{
	model.StatPassingYards:   0.04,
	model.StatPassingTDs:     4,
	model.StatInterceptions:  -2,
	model.StatRushingYards:   0.1,
	model.StatRushingTDs:     6,
	model.StatReceptions:     1,
	model.StatReceivingYards: 0.1,
	model.StatReceivingTDs:   6,
	model.StatFumblesLost:    -2,
}

// StandardScoring is PPRScoring without the per-reception point.
var StandardScoring = map[string]float64{
	model.StatPassingYards:   0.04,
	model.StatPassingTDs:     4,
	model.StatInterceptions:  -2,
	model.StatRushingYards:   0.1,
	model.StatRushingTDs:     6,
	model.StatReceivingYards: 0.1,
	model.StatReceivingTDs:   6,
	model.StatFumblesLost:    -2,
}

// FantasyPoints computes total points from raw stats and scoring weights.
func FantasyPoints(raw map[string]float64, scoringMap map[string]float64) float64 {
	total := 0.0
	for key, value := range raw {
		if weight, ok := scoringMap[key]; ok {
			total += value * weight
		}
	}
	return math.Round(total*100) / 100
}

// regularSeasonGames is the length of the schedule a projection extrapolates
// to.
const regularSeasonGames = 17

// ProjectPoints extrapolates a full-season PPR projection from the player's
// per-game average. Players who missed time project to a full schedule.
func ProjectPoints(s *model.SeasonSummary) float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	perGame := s.FantasyPointsPPR / float64(s.GamesPlayed)
	return math.Round(perGame*regularSeasonGames*10) / 10
}

// adpBuckets maps a position rank to an estimated overall draft slot when the
// market feed has no entry for the player. Starters land in rounds 1-8,
// depth pieces later.
var adpBuckets = map[model.Position][]float64{
	model.PosQB: {25, 45, 65, 85, 110, 140},
	model.PosRB: {5, 12, 22, 35, 50, 70, 95, 120, 150},
	model.PosWR: {8, 16, 28, 40, 55, 75, 100, 125, 155},
	model.PosTE: {20, 45, 75, 105, 140},
}

// EstimateADP returns an estimated overall ADP for a player ranked posRank
// (1-based) at their position. Ranks beyond the bucket table fall to the back
// of the draft.
func EstimateADP(pos model.Position, posRank int) float64 {
	buckets, ok := adpBuckets[pos]
	if !ok || posRank < 1 {
		return 250
	}
	if posRank > len(buckets) {
		// Past the table: 12 slots per additional rank, capped at undrafted.
		est := buckets[len(buckets)-1] + float64(posRank-len(buckets))*12
		return math.Min(est, 250)
	}
	return buckets[posRank-1]
}
