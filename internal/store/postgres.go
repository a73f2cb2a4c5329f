package store

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

// Schema for the optional Postgres mirror.
const Schema = `
CREATE TABLE IF NOT EXISTS player_season_stats (
	player_key        TEXT NOT NULL,
	season            INT NOT NULL,
	player_name       TEXT NOT NULL,
	position          TEXT NOT NULL,
	team              TEXT,
	games_played      INT NOT NULL DEFAULT 0,
	raw_stats         JSONB,
	fantasy_points_ppr NUMERIC,
	fantasy_points_std NUMERIC,
	projected_points  NUMERIC,
	adp_overall       NUMERIC,
	risk_score        NUMERIC,
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (player_key, season)
)`

// EnsureSchema creates the mirror table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, Schema)
	return err
}

// UpsertSeasonSummary mirrors one season summary into Postgres.
func UpsertSeasonSummary(ctx context.Context, db *pgxpool.Pool, s *model.SeasonSummary) error {
	rawJSON, err := json.Marshal(s.Stats)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO player_season_stats (
			player_key, season, player_name, position, team, games_played,
			raw_stats, fantasy_points_ppr, fantasy_points_std,
			projected_points, adp_overall, risk_score, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (player_key, season) DO UPDATE SET
			player_name = EXCLUDED.player_name,
			position = EXCLUDED.position,
			team = EXCLUDED.team,
			games_played = EXCLUDED.games_played,
			raw_stats = EXCLUDED.raw_stats,
			fantasy_points_ppr = EXCLUDED.fantasy_points_ppr,
			fantasy_points_std = EXCLUDED.fantasy_points_std,
			projected_points = EXCLUDED.projected_points,
			adp_overall = EXCLUDED.adp_overall,
			risk_score = EXCLUDED.risk_score,
			updated_at = now()
	`, s.Key, s.Season, s.PlayerName, string(s.Position), s.Team, s.GamesPlayed,
		rawJSON, s.FantasyPointsPPR, s.FantasyPointsStd,
		s.ProjectedPointsPPR, s.ADPOverall, s.RiskScore)
	return err
}
