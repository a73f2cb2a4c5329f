package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

func TestFantasyPoints(t *testing.T) {
	raw := map[string]float64{
		model.StatPassingYards:   300,
		model.StatPassingTDs:     3,
		model.StatInterceptions:  1,
		model.StatRushingYards:   50,
		model.StatRushingTDs:     1,
		model.StatReceptions:     0,
		model.StatReceivingYards: 0,
	}
	// 12 + 12 - 2 + 5 + 6 = 33
	assert.Equal(t, 33.0, FantasyPoints(raw, PPRScoring))
}

func TestFantasyPointsPPRVsStandard(t *testing.T) {
	raw := map[string]float64{
		model.StatReceptions:     8,
		model.StatReceivingYards: 120,
		model.StatReceivingTDs:   1,
	}
	assert.Equal(t, 26.0, FantasyPoints(raw, PPRScoring))
	assert.Equal(t, 18.0, FantasyPoints(raw, StandardScoring))
}

func TestFantasyPointsIgnoresUnknownKeys(t *testing.T) {
	raw := map[string]float64{"special_teams_tackles": 12}
	assert.Equal(t, 0.0, FantasyPoints(raw, PPRScoring))
}

func TestProjectPoints(t *testing.T) {
	s := &model.SeasonSummary{GamesPlayed: 10, FantasyPointsPPR: 200}
	// 20 per game over a 17 game schedule.
	assert.Equal(t, 340.0, ProjectPoints(s))

	assert.Equal(t, 0.0, ProjectPoints(&model.SeasonSummary{}))
}

func TestEstimateADP(t *testing.T) {
	tests := []struct {
		pos      model.Position
		rank     int
		expected float64
	}{
		{pos: model.PosRB, rank: 1, expected: 5},
		{pos: model.PosQB, rank: 1, expected: 25},
		{pos: model.PosTE, rank: 5, expected: 140},
		// Past the bucket table: 12 slots per rank.
		{pos: model.PosRB, rank: 10, expected: 162},
		// Deep ranks cap at undrafted territory.
		{pos: model.PosWR, rank: 50, expected: 250},
		{pos: model.PosUnknown, rank: 1, expected: 250},
		{pos: model.PosQB, rank: 0, expected: 250},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, EstimateADP(tc.pos, tc.rank), "pos=%s rank=%d", tc.pos, tc.rank)
	}
}
