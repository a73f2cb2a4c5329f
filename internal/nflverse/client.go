package nflverse

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

// ReleaseURL is the root of the nflverse-data release downloads. Each dataset
// lives under its own release tag, e.g. rosters/roster_2025.csv.
const ReleaseURL = "https://github.com/nflverse/nflverse-data/releases/download"

type Client struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

func New(logger *logrus.Logger) *Client {
	return &Client{
		url: ReleaseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

// NewWithURL overrides the release root, used by tests to point at a fake
// server.
func NewWithURL(url string, logger *logrus.Logger) *Client {
	c := New(logger)
	c.url = url
	return c
}

// Rosters fetches the current team assignment rows for a season.
func (c *Client) Rosters(ctx context.Context, season int) ([]RosterRow, error) {
	url := fmt.Sprintf("%s/rosters/roster_%d.csv", c.url, season)
	records, idx, err := c.fetchCSV(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch rosters: %w", err)
	}

	rows := make([]RosterRow, 0, len(records))
	for _, rec := range records {
		name := idx.get(rec, "full_name")
		if name == "" {
			name = idx.get(rec, "player_name")
		}
		if name == "" {
			continue
		}
		rows = append(rows, RosterRow{
			Season:   idx.getInt(rec, "season"),
			Team:     model.NormalizeTeam(idx.get(rec, "team")),
			Position: model.ParsePosition(idx.get(rec, "position")),
			Status:   idx.get(rec, "status"),
			FullName: name,
			YearsExp: idx.getInt(rec, "years_exp"),
		})
	}
	c.logger.WithFields(logrus.Fields{"season": season, "rows": len(rows)}).Info("fetched roster rows")
	return rows, nil
}

// Weekly fetches the per-week stat rows for a season.
func (c *Client) Weekly(ctx context.Context, season int) ([]WeeklyRow, error) {
	url := fmt.Sprintf("%s/player_stats/player_stats_%d.csv", c.url, season)
	records, idx, err := c.fetchCSV(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch weekly stats: %w", err)
	}

	rows := make([]WeeklyRow, 0, len(records))
	for _, rec := range records {
		name := idx.get(rec, "player_display_name")
		if name == "" {
			name = idx.get(rec, "player_name")
		}
		if name == "" {
			continue
		}
		rows = append(rows, WeeklyRow{
			PlayerName: name,
			Position:   model.ParsePosition(idx.get(rec, "position")),
			Team:       model.NormalizeTeam(idx.get(rec, "recent_team")),
			Season:     idx.getInt(rec, "season"),
			Week:       idx.getInt(rec, "week"),
			Stats:      extractStats(rec, idx),
		})
	}
	c.logger.WithFields(logrus.Fields{"season": season, "rows": len(rows)}).Info("fetched weekly rows")
	return rows, nil
}

// Seasonal fetches the season-total rows for a season.
func (c *Client) Seasonal(ctx context.Context, season int) ([]SeasonalRow, error) {
	url := fmt.Sprintf("%s/player_stats/player_stats_season_%d.csv", c.url, season)
	records, idx, err := c.fetchCSV(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch seasonal stats: %w", err)
	}

	rows := make([]SeasonalRow, 0, len(records))
	for _, rec := range records {
		name := idx.get(rec, "player_display_name")
		if name == "" {
			name = idx.get(rec, "player_name")
		}
		if name == "" {
			continue
		}
		rows = append(rows, SeasonalRow{
			PlayerName: name,
			Position:   model.ParsePosition(idx.get(rec, "position")),
			Team:       model.NormalizeTeam(idx.get(rec, "recent_team")),
			Season:     idx.getInt(rec, "season"),
			Games:      idx.getInt(rec, "games"),
			Stats:      extractStats(rec, idx),
		})
	}
	c.logger.WithFields(logrus.Fields{"season": season, "rows": len(rows)}).Info("fetched seasonal rows")
	return rows, nil
}

// Injuries fetches the weekly injury report rows for a season.
func (c *Client) Injuries(ctx context.Context, season int) ([]model.InjuryReport, error) {
	url := fmt.Sprintf("%s/injuries/injuries_%d.csv", c.url, season)
	records, idx, err := c.fetchCSV(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch injuries: %w", err)
	}

	rows := make([]model.InjuryReport, 0, len(records))
	for _, rec := range records {
		name := idx.get(rec, "full_name")
		status := idx.get(rec, "report_status")
		if name == "" || status == "" {
			continue
		}
		rows = append(rows, model.InjuryReport{
			PlayerName:   name,
			Position:     model.ParsePosition(idx.get(rec, "position")),
			Team:         model.NormalizeTeam(idx.get(rec, "team")),
			Season:       idx.getInt(rec, "season"),
			Week:         idx.getInt(rec, "week"),
			ReportStatus: status,
			Injury:       idx.get(rec, "report_primary_injury"),
		})
	}
	c.logger.WithFields(logrus.Fields{"season": season, "rows": len(rows)}).Info("fetched injury rows")
	return rows, nil
}

// extractStats pulls the shared stat vocabulary out of a record. Missing
// columns read as zero so older seasons with fewer columns still parse.
func extractStats(rec []string, idx headerIndex) map[string]float64 {
	stats := make(map[string]float64)
	for _, key := range []string{
		model.StatPassingYards, model.StatPassingTDs, model.StatInterceptions,
		model.StatRushingYards, model.StatRushingTDs,
		model.StatReceptions, model.StatTargets,
		model.StatReceivingYards, model.StatReceivingTDs,
	} {
		stats[key] = idx.getFloat(rec, key)
	}
	// nflverse splits fumbles by play type.
	stats[model.StatFumblesLost] = idx.getFloat(rec, "sack_fumbles_lost") +
		idx.getFloat(rec, "rushing_fumbles_lost") +
		idx.getFloat(rec, "receiving_fumbles_lost")
	return stats
}

type headerIndex map[string]int

func (h headerIndex) get(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (h headerIndex) getInt(rec []string, name string) int {
	n, _ := strconv.Atoi(h.get(rec, name))
	return n
}

func (h headerIndex) getFloat(rec []string, name string) float64 {
	f, _ := strconv.ParseFloat(h.get(rec, name), 64)
	return f
}

func (c *Client) fetchCSV(ctx context.Context, url string) ([][]string, headerIndex, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("User-Agent", "fantasy-football-go/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, string(b))
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1

	hdr, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(headerIndex, len(hdr))
	for i, h := range hdr {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return records, idx, nil
}
