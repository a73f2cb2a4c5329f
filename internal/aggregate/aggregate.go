// Package aggregate implements the reduce-by-key merge at the center of the
// pipeline: heterogeneous source rows (roster, weekly, seasonal) collapse
// into exactly one SeasonSummary per (name, position) pair.
package aggregate

import (
	"math"
	"sort"

	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/nflverse"
	"github.com/jamesexley/fantasy-football-go/internal/score"
)

type bucket struct {
	name     string
	position model.Position
	team     string
	status   string
	season   int
	yearsExp int
	games    int
	totals   map[string]float64

	// seasonal rows are authoritative when present; weekly accumulation is
	// the fallback.
	seasonalGames  int
	seasonalTotals map[string]float64
}

type Aggregator struct {
	season  int
	buckets map[string]*bucket
}

func New(season int) *Aggregator {
	return &Aggregator{
		season:  season,
		buckets: make(map[string]*bucket),
	}
}

func (a *Aggregator) bucketFor(name string, pos model.Position) *bucket {
	key := model.PlayerKey(name, pos)
	b, ok := a.buckets[key]
	if !ok {
		b = &bucket{
			name:     model.TrimNameSuffix(name),
			position: pos,
			team:     model.TeamFA,
			season:   a.season,
			yearsExp: -1, // unknown until a roster row arrives
			totals:   make(map[string]float64),
		}
		a.buckets[key] = b
	}
	return b
}

// AddRoster seeds or updates a player's team assignment and status. Roster
// rows carry no stats.
func (a *Aggregator) AddRoster(r nflverse.RosterRow) {
	if !r.Position.Valid() || r.FullName == "" {
		return
	}
	b := a.bucketFor(r.FullName, r.Position)
	if r.Team != model.TeamFA {
		b.team = r.Team
	}
	if r.Status != "" {
		b.status = r.Status
	}
	b.yearsExp = r.YearsExp
}

// AddWeekly accumulates one week of performance into the player's running
// totals and bumps the games-played count.
func (a *Aggregator) AddWeekly(w nflverse.WeeklyRow) {
	if !w.Position.Valid() || w.PlayerName == "" {
		return
	}
	b := a.bucketFor(w.PlayerName, w.Position)
	b.games++
	for k, v := range w.Stats {
		b.totals[k] += v
	}
	// Weekly rows track mid-season trades; the most recent row wins.
	if w.Team != model.TeamFA {
		b.team = w.Team
	}
}

// AddSeasonal records the source's own season totals for the player. When
// present they override the weekly accumulation in the final reduce.
func (a *Aggregator) AddSeasonal(s nflverse.SeasonalRow) {
	if !s.Position.Valid() || s.PlayerName == "" {
		return
	}
	b := a.bucketFor(s.PlayerName, s.Position)
	b.seasonalGames = s.Games
	b.seasonalTotals = s.Stats
	if s.Team != model.TeamFA {
		b.team = s.Team
	}
}

// Thresholds filter out players with too small a sample to score. Players
// below either floor are dropped from the output.
type Thresholds struct {
	MinGames  int
	MinPoints float64
}

// Summaries reduces every bucket to one output record, applies the
// thresholds, and returns the records sorted by PPR points descending with
// ties broken by name ascending.
func (a *Aggregator) Summaries(th Thresholds) []*model.SeasonSummary {
	out := make([]*model.SeasonSummary, 0, len(a.buckets))
	for key, b := range a.buckets {
		games := b.games
		totals := b.totals
		if b.seasonalTotals != nil {
			totals = b.seasonalTotals
			if b.seasonalGames > 0 {
				games = b.seasonalGames
			}
		}

		ppr := score.FantasyPoints(totals, score.PPRScoring)
		if games < th.MinGames || ppr < th.MinPoints {
			continue
		}

		s := &model.SeasonSummary{
			Key:              key,
			PlayerName:       b.name,
			Position:         b.position,
			Team:             b.team,
			Season:           b.season,
			Status:           b.status,
			YearsExp:         b.yearsExp,
			GamesPlayed:      games,
			Stats:            totals,
			FantasyPointsPPR: ppr,
			FantasyPointsStd: score.FantasyPoints(totals, score.StandardScoring),
		}
		if games > 0 {
			s.PointsPerGame = math.Round(ppr/float64(games)*100) / 100
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FantasyPointsPPR != out[j].FantasyPointsPPR {
			return out[i].FantasyPointsPPR > out[j].FantasyPointsPPR
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

// Len reports how many distinct (name, position) buckets have been seen.
func (a *Aggregator) Len() int {
	return len(a.buckets)
}
