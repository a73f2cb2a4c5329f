// Package collector orchestrates the batch pass: fetch from the upstream
// sources, aggregate by (name, position), layer on the heuristic scores, and
// persist the artifacts. Every source is best-effort; a failed fetch logs
// and the pass continues with what it has.
package collector

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/aggregate"
	"github.com/jamesexley/fantasy-football-go/internal/ffcalc"
	"github.com/jamesexley/fantasy-football-go/internal/insights"
	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/nflverse"
	"github.com/jamesexley/fantasy-football-go/internal/score"
	"github.com/jamesexley/fantasy-football-go/internal/store"
)

// Thresholds for including a player in players.json. One game and ten PPR
// points filters out practice-squad noise without touching fringe starters.
var defaultThresholds = aggregate.Thresholds{MinGames: 1, MinPoints: 10}

type Collector struct {
	nfl      *nflverse.Client
	adp      *ffcalc.Client
	players  PlayerLoader
	analyzer *insights.Analyzer
	store    *store.JSONStore
	pg       *pgxpool.Pool
	logger   *logrus.Logger
}

// PlayerLoader supplies the player database for the insights pass.
type PlayerLoader interface {
	Load(ctx context.Context) (*store.PlayersFile, error)
}

func New(nfl *nflverse.Client, adp *ffcalc.Client, players PlayerLoader, analyzer *insights.Analyzer, st *store.JSONStore, pg *pgxpool.Pool, logger *logrus.Logger) *Collector {
	return &Collector{
		nfl:      nfl,
		adp:      adp,
		players:  players,
		analyzer: analyzer,
		store:    st,
		pg:       pg,
		logger:   logger,
	}
}

// CollectPlayers runs the full player pass for a season and writes
// players.json. It fails only when no stat source produced any rows.
func (c *Collector) CollectPlayers(ctx context.Context, season int) (*store.PlayersFile, error) {
	agg := aggregate.New(season)

	rosters, err := c.nfl.Rosters(ctx, season)
	if err != nil {
		c.logger.WithError(err).Warn("roster fetch failed, continuing without team assignments")
	}
	for _, r := range rosters {
		agg.AddRoster(r)
	}

	weekly, err := c.nfl.Weekly(ctx, season)
	if err != nil {
		c.logger.WithError(err).Warn("weekly fetch failed, continuing")
	}
	for _, w := range weekly {
		agg.AddWeekly(w)
	}

	seasonal, err := c.nfl.Seasonal(ctx, season)
	if err != nil {
		c.logger.WithError(err).Warn("seasonal fetch failed, continuing with weekly accumulation")
	}
	for _, s := range seasonal {
		agg.AddSeasonal(s)
	}

	if len(weekly) == 0 && len(seasonal) == 0 {
		return nil, fmt.Errorf("no stat rows from any source for season %d", season)
	}

	summaries := agg.Summaries(defaultThresholds)

	// Market ADP when the feed is up, position-rank estimation otherwise.
	adpLookup, err := c.adp.FetchADP(ctx, ffcalc.FormatPPR, 12, season)
	if err != nil {
		c.logger.WithError(err).Warn("ADP fetch failed, estimating from position ranks")
		adpLookup = nil
	}
	applyADP(summaries, adpLookup)

	// Injury reports feed the risk score; missing reports just mean less
	// risk signal.
	injuries, err := c.nfl.Injuries(ctx, season)
	if err != nil {
		c.logger.WithError(err).Warn("injury fetch failed, risk scores use games played only")
	}
	byPlayer := groupInjuries(injuries)

	for _, s := range summaries {
		s.ProjectedPointsPPR = score.ProjectPoints(s)
		s.RiskScore = score.RiskScore(s, byPlayer[s.Key])
	}

	file, err := c.store.WritePlayers(season, summaries)
	if err != nil {
		return nil, fmt.Errorf("write players: %w", err)
	}

	if c.pg != nil {
		c.mirrorToPostgres(ctx, summaries)
	}

	return file, nil
}

// CollectInjuries fetches the season's injury reports and writes
// injuries.json keyed by player key.
func (c *Collector) CollectInjuries(ctx context.Context, season int) (*store.InjuriesFile, error) {
	injuries, err := c.nfl.Injuries(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetch injuries: %w", err)
	}
	return c.store.WriteInjuries(season, groupInjuries(injuries))
}

// BuildInsights runs the analysis pass over the player database and writes
// ai_insights.json.
func (c *Collector) BuildInsights(ctx context.Context, season int) (*store.InsightsFile, error) {
	playerFile, err := c.players.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load player data: %w", err)
	}

	adpSource := "fantasy_football_calculator"
	adpLookup, err := c.adp.FetchADP(ctx, ffcalc.FormatStandard, 12, season)
	if err != nil {
		c.logger.WithError(err).Warn("ADP fetch failed, using existing ADP data")
		adpLookup = nil
		adpSource = "simulated"
	}

	report := c.analyzer.Run(playerFile.Players, adpLookup, adpSource)

	narrative, err := insights.Narrative(ctx, report)
	if err != nil {
		c.logger.WithError(err).Warn("narrative generation failed, writing report without it")
	} else {
		report.ExecutiveSummary.Narrative = narrative
	}

	return c.store.WriteInsights(season, report)
}

// Refresh re-runs the player and injury passes. Used by the api worker and
// the admin refresh endpoint.
func (c *Collector) Refresh(ctx context.Context, season int) error {
	if _, err := c.CollectPlayers(ctx, season); err != nil {
		return err
	}
	if _, err := c.CollectInjuries(ctx, season); err != nil {
		// Injuries are supplementary; a players.json refresh still counts.
		c.logger.WithError(err).Warn("injury refresh failed")
	}
	return nil
}

// applyADP assigns each summary its market ADP when the name matches the
// feed, and a position-rank estimate otherwise. Summaries arrive sorted by
// PPR points descending, so position rank is the running count per position.
func applyADP(summaries []*model.SeasonSummary, adpLookup map[string]ffcalc.Entry) {
	posRank := make(map[model.Position]int)
	for _, s := range summaries {
		posRank[s.Position]++
		if entry, ok := adpLookup[model.NameKey(s.PlayerName)]; ok && entry.ADPOverall > 0 {
			s.ADPOverall = entry.ADPOverall
			s.ADPPosition = entry.PositionRank
			s.ADPSource = "fantasy_football_calculator"
			continue
		}
		s.ADPOverall = score.EstimateADP(s.Position, posRank[s.Position])
		s.ADPPosition = posRank[s.Position]
		s.ADPSource = "estimated"
	}
}

func groupInjuries(injuries []model.InjuryReport) map[string][]model.InjuryReport {
	byPlayer := make(map[string][]model.InjuryReport)
	for _, r := range injuries {
		key := model.PlayerKey(r.PlayerName, r.Position)
		byPlayer[key] = append(byPlayer[key], r)
	}
	return byPlayer
}

func (c *Collector) mirrorToPostgres(ctx context.Context, summaries []*model.SeasonSummary) {
	if err := store.EnsureSchema(ctx, c.pg); err != nil {
		c.logger.WithError(err).Error("ensure schema failed, skipping Postgres mirror")
		return
	}
	mirrored := 0
	for _, s := range summaries {
		if err := store.UpsertSeasonSummary(ctx, c.pg, s); err != nil {
			c.logger.WithError(err).WithField("player", s.Key).Error("upsert failed")
			continue
		}
		mirrored++
	}
	c.logger.WithField("players", mirrored).Info("mirrored summaries to Postgres")
}
