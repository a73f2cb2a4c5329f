// Package store persists the pipeline artifacts: the json_data/ files the
// rest of the project consumes, and optionally a Postgres mirror of the
// season summaries.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/jamesexley/fantasy-football-go/internal/insights"
	"github.com/jamesexley/fantasy-football-go/internal/model"
)

const (
	// Version stamps every artifact's metadata block.
	Version = "2.0"

	PlayersFileName  = "players.json"
	InjuriesFileName = "injuries.json"
	InsightsFileName = "ai_insights.json"
)

// Metadata is the envelope on every artifact.
type Metadata struct {
	Version     string         `json:"version"`
	GeneratedAt string         `json:"generated_at"`
	Season      int            `json:"season"`
	Counts      map[string]int `json:"counts"`
}

// PlayersFile is the players.json artifact.
type PlayersFile struct {
	Metadata Metadata                        `json:"metadata"`
	Players  map[string]*model.SeasonSummary `json:"players"`
}

// InjuriesFile is the injuries.json artifact, keyed by player key.
type InjuriesFile struct {
	Metadata Metadata                        `json:"metadata"`
	Injuries map[string][]model.InjuryReport `json:"injuries"`
}

// InsightsFile is the ai_insights.json artifact.
type InsightsFile struct {
	Metadata Metadata         `json:"metadata"`
	Insights *insights.Report `json:"insights"`
}

// JSONStore reads and writes the artifacts under a single directory,
// typically json_data/.
type JSONStore struct {
	dir   string
	clock clock.Clock
}

func NewJSONStore(dir string, c clock.Clock) *JSONStore {
	return &JSONStore{dir: dir, clock: c}
}

func (s *JSONStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *JSONStore) metadata(season int, counts map[string]int) Metadata {
	return Metadata{
		Version:     Version,
		GeneratedAt: s.clock.Now().UTC().Format(time.RFC3339),
		Season:      season,
		Counts:      counts,
	}
}

// WritePlayers writes players.json from a list of season summaries, keyed by
// player key, with per-position counts in the metadata.
func (s *JSONStore) WritePlayers(season int, summaries []*model.SeasonSummary) (*PlayersFile, error) {
	players := make(map[string]*model.SeasonSummary, len(summaries))
	counts := map[string]int{"players": len(summaries)}
	for _, sum := range summaries {
		players[sum.Key] = sum
		counts[string(sum.Position)]++
	}
	file := &PlayersFile{
		Metadata: s.metadata(season, counts),
		Players:  players,
	}
	return file, s.writeJSON(PlayersFileName, file)
}

func (s *JSONStore) ReadPlayers() (*PlayersFile, error) {
	var file PlayersFile
	if err := s.readJSON(PlayersFileName, &file); err != nil {
		return nil, err
	}
	for key, p := range file.Players {
		p.Key = key
	}
	return &file, nil
}

// WriteInjuries writes injuries.json keyed by player key.
func (s *JSONStore) WriteInjuries(season int, reports map[string][]model.InjuryReport) (*InjuriesFile, error) {
	total := 0
	for _, rs := range reports {
		total += len(rs)
	}
	file := &InjuriesFile{
		Metadata: s.metadata(season, map[string]int{"players": len(reports), "reports": total}),
		Injuries: reports,
	}
	return file, s.writeJSON(InjuriesFileName, file)
}

func (s *JSONStore) ReadInjuries() (*InjuriesFile, error) {
	var file InjuriesFile
	if err := s.readJSON(InjuriesFileName, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// WriteInsights writes ai_insights.json.
func (s *JSONStore) WriteInsights(season int, report *insights.Report) (*InsightsFile, error) {
	file := &InsightsFile{
		Metadata: s.metadata(season, map[string]int{
			"players_analyzed": report.Metadata.PlayersAnalyzed,
			"must_starts":      len(report.MustStarts),
			"sleepers":         len(report.Sleepers),
			"busts":            len(report.Busts),
		}),
		Insights: report,
	}
	return file, s.writeJSON(InsightsFileName, file)
}

func (s *JSONStore) ReadInsights() (*InsightsFile, error) {
	var file InsightsFile
	if err := s.readJSON(InsightsFileName, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// PlayersAge reports how old the stored players.json is. Missing or
// unparseable files read as very old so callers refresh them.
func (s *JSONStore) PlayersAge() time.Duration {
	file, err := s.ReadPlayers()
	if err != nil {
		return 24 * 365 * time.Hour
	}
	generated, err := time.Parse(time.RFC3339, file.Metadata.GeneratedAt)
	if err != nil {
		return 24 * 365 * time.Hour
	}
	return s.clock.Now().UTC().Sub(generated)
}

func (s *JSONStore) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	b = append(b, '\n')
	return os.WriteFile(s.Path(name), b, 0o644)
}

func (s *JSONStore) readJSON(name string, v any) error {
	b, err := os.ReadFile(s.Path(name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
