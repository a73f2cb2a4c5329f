package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

func TestRiskScoreBaseline(t *testing.T) {
	s := &model.SeasonSummary{YearsExp: 5, GamesPlayed: 17}
	assert.Equal(t, 25.0, RiskScore(s, nil))
}

func TestRiskScoreFromReports(t *testing.T) {
	s := &model.SeasonSummary{YearsExp: 5, GamesPlayed: 15}
	reports := []model.InjuryReport{
		{ReportStatus: "Out"},
		{ReportStatus: "Questionable"},
		{ReportStatus: "Questionable"},
		{ReportStatus: "Unknown Status"},
	}
	// 25 + 15 + 5 + 5, the unknown status adds nothing.
	assert.Equal(t, 50.0, RiskScore(s, reports))
}

func TestRiskScoreMissedTime(t *testing.T) {
	s := &model.SeasonSummary{YearsExp: 5, GamesPlayed: 5}
	assert.Equal(t, 45.0, RiskScore(s, nil))
}

func TestRiskScoreExperienceVolatility(t *testing.T) {
	tests := []struct {
		name     string
		yearsExp int
		expected float64
	}{
		{"rookie", 0, 35.0},
		{"second year", 1, 35.0},
		{"mid-career", 5, 25.0},
		{"ninth year", 9, 25.0},
		{"tenth year", 10, 35.0},
		{"late career", 14, 35.0},
		{"no roster row", -1, 25.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &model.SeasonSummary{YearsExp: tc.yearsExp, GamesPlayed: 17}
			assert.Equal(t, tc.expected, RiskScore(s, nil))
		})
	}
}

func TestRiskScoreCareerStageSeparatesIdenticalSeasons(t *testing.T) {
	reports := []model.InjuryReport{{ReportStatus: "Questionable"}}
	rookie := &model.SeasonSummary{YearsExp: 0, GamesPlayed: 12}
	veteran := &model.SeasonSummary{YearsExp: 12, GamesPlayed: 12}
	mid := &model.SeasonSummary{YearsExp: 6, GamesPlayed: 12}

	assert.Equal(t, 40.0, RiskScore(rookie, reports))
	assert.Equal(t, 40.0, RiskScore(veteran, reports))
	assert.Equal(t, 30.0, RiskScore(mid, reports))
}

func TestRiskScoreClampedAt100(t *testing.T) {
	s := &model.SeasonSummary{YearsExp: 5, GamesPlayed: 2}
	var reports []model.InjuryReport
	for i := 0; i < 10; i++ {
		reports = append(reports, model.InjuryReport{ReportStatus: "Out"})
	}
	assert.Equal(t, 100.0, RiskScore(s, reports))
}
