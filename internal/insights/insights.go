// Package insights runs the draft analysis pass: roster verification, ADP
// refresh, per-player scoring, and the executive summary that lands in
// ai_insights.json.
package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/ffcalc"
	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/score"
)

const aiVersion = "enhanced_v2.0"

// significantADPMove is the threshold above which a market ADP change counts
// as an update worth reporting.
const significantADPMove = 10

type ReportMetadata struct {
	AnalysisDate      string `json:"analysis_date"`
	PlayersAnalyzed   int    `json:"players_analyzed"`
	RosterCorrections int    `json:"roster_corrections"`
	ADPUpdates        int    `json:"adp_updates"`
	AIVersion         string `json:"ai_version"`
	ADPSource         string `json:"adp_source"`
}

type RosterCorrection struct {
	Player        string `json:"player"`
	OldTeam       string `json:"old_team"`
	NewTeam       string `json:"new_team"`
	FantasyImpact string `json:"fantasy_impact"`
}

// CategoryEntry is one player in a must-start/sleeper/bust list.
type CategoryEntry struct {
	PlayerKey       string         `json:"player_key"`
	Name            string         `json:"name"`
	Position        model.Position `json:"position"`
	Team            string         `json:"team"`
	Score           float64        `json:"score"`
	ADPVsProjection float64        `json:"adp_vs_projection,omitempty"`
	Reason          string         `json:"reason"`
}

type ExecutiveSummary struct {
	TotalPlayersAnalyzed  int            `json:"total_players_analyzed"`
	RosterCorrectionsMade int            `json:"roster_corrections_made"`
	ADPUpdatesApplied     int            `json:"adp_updates_applied"`
	KeyInsights           []string       `json:"key_insights"`
	TopRecommendation     *CategoryEntry `json:"top_recommendation"`
	TopSleeper            *CategoryEntry `json:"top_sleeper"`
	Narrative             string         `json:"narrative,omitempty"`
}

// Report is the full analysis output.
type Report struct {
	Metadata              ReportMetadata            `json:"metadata"`
	RosterCorrectionsMade []RosterCorrection        `json:"roster_corrections_made"`
	MustStarts            []CategoryEntry           `json:"must_starts"`
	Sleepers              []CategoryEntry           `json:"sleepers"`
	Busts                 []CategoryEntry           `json:"busts"`
	PlayerAnalysis        map[string]score.Analysis `json:"player_analysis"`
	ExecutiveSummary      ExecutiveSummary          `json:"executive_summary"`
}

type Analyzer struct {
	clock  clock.Clock
	logger *logrus.Logger
}

func NewAnalyzer(c clock.Clock, logger *logrus.Logger) *Analyzer {
	return &Analyzer{clock: c, logger: logger}
}

// Run analyzes every player in place: verifies rosters, refreshes ADP from
// the market table (nil when the feed was unavailable), scores each player,
// and buckets them into the draft-guide categories.
func (a *Analyzer) Run(players map[string]*model.SeasonSummary, adp map[string]ffcalc.Entry, adpSource string) *Report {
	now := a.clock.Now().UTC()
	report := &Report{
		Metadata: ReportMetadata{
			AnalysisDate:    now.Format(time.RFC3339),
			PlayersAnalyzed: len(players),
			AIVersion:       aiVersion,
			ADPSource:       adpSource,
		},
		RosterCorrectionsMade: []RosterCorrection{},
		MustStarts:            []CategoryEntry{},
		Sleepers:              []CategoryEntry{},
		Busts:                 []CategoryEntry{},
		PlayerAnalysis:        make(map[string]score.Analysis, len(players)),
	}

	// Deterministic pass order so reruns produce identical files.
	keys := make([]string, 0, len(players))
	for k := range players {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p := players[key]

		if ShouldVerifyRoster(p) {
			if c := VerifyRoster(p); c.Updated {
				report.Metadata.RosterCorrections++
				report.RosterCorrectionsMade = append(report.RosterCorrectionsMade, RosterCorrection{
					Player:        p.PlayerName,
					OldTeam:       p.Team,
					NewTeam:       c.CurrentTeam,
					FantasyImpact: c.FantasyImpact,
				})
				p.Team = c.CurrentTeam
				p.Status = c.Status
				p.LastVerified = now.Format(time.RFC3339)
			}
		}

		if adp != nil {
			if entry, ok := adp[model.NameKey(p.PlayerName)]; ok {
				oldADP := p.ADPOverall
				if oldADP <= 0 {
					oldADP = 999
				}
				newADP := entry.ADPOverall
				if newADP > 0 {
					if diff := oldADP - newADP; diff > significantADPMove || diff < -significantADPMove {
						report.Metadata.ADPUpdates++
					}
					p.ADPOverall = newADP
					p.ADPPosition = entry.PositionRank
					p.ADPSource = "fantasy_football_calculator"
					p.ADPLastUpdated = now.Format(time.RFC3339)
				}
			}
		}

		analysis := score.Analyze(p)
		report.PlayerAnalysis[key] = analysis

		entry := CategoryEntry{
			PlayerKey: key,
			Name:      p.PlayerName,
			Position:  p.Position,
			Team:      p.Team,
			Score:     analysis.Score,
			Reason:    analysis.CategoryReason,
		}
		switch score.Categorize(analysis) {
		case score.CategoryMustStart:
			report.MustStarts = append(report.MustStarts, entry)
		case score.CategorySleeper:
			report.Sleepers = append(report.Sleepers, entry)
		case score.CategoryBust:
			entry.ADPVsProjection = analysis.ADPVsProjection
			entry.Reason = "ADP significantly higher than projection"
			report.Busts = append(report.Busts, entry)
		}
	}

	sortByScore(report.MustStarts)
	sortByScore(report.Sleepers)
	sortByScore(report.Busts)

	report.ExecutiveSummary = buildExecutiveSummary(report)

	a.logger.WithFields(logrus.Fields{
		"players":     report.Metadata.PlayersAnalyzed,
		"corrections": report.Metadata.RosterCorrections,
		"must_starts": len(report.MustStarts),
		"sleepers":    len(report.Sleepers),
		"busts":       len(report.Busts),
	}).Info("analysis complete")

	return report
}

func sortByScore(entries []CategoryEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
}

func buildExecutiveSummary(r *Report) ExecutiveSummary {
	s := ExecutiveSummary{
		TotalPlayersAnalyzed:  r.Metadata.PlayersAnalyzed,
		RosterCorrectionsMade: r.Metadata.RosterCorrections,
		ADPUpdatesApplied:     r.Metadata.ADPUpdates,
		KeyInsights: []string{
			fmt.Sprintf("Identified %d must-start players", len(r.MustStarts)),
			fmt.Sprintf("Found %d sleeper candidates", len(r.Sleepers)),
			fmt.Sprintf("Flagged %d potential bust risks", len(r.Busts)),
			fmt.Sprintf("Made %d roster corrections", r.Metadata.RosterCorrections),
		},
	}
	if len(r.MustStarts) > 0 {
		s.TopRecommendation = &r.MustStarts[0]
	}
	if len(r.Sleepers) > 0 {
		s.TopSleeper = &r.Sleepers[0]
	}
	return s
}
