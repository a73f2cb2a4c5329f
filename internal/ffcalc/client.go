// Package ffcalc fetches market ADP data from the Fantasy Football
// Calculator public API.
package ffcalc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/model"
)

const FFCalcURL = "https://fantasyfootballcalculator.com/api/v1"

// Valid scoring formats for the ADP endpoint.
const (
	FormatStandard = "standard"
	FormatPPR      = "ppr"
	FormatHalfPPR  = "half-ppr"
)

// Entry is one player's market ADP data, keyed in the lookup table by
// model.NameKey.
type Entry struct {
	Name         string
	Position     model.Position
	Team         string
	ADPOverall   float64
	PositionRank int
}

type Client struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

func New(logger *logrus.Logger) *Client {
	return &Client{
		url: FFCalcURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

func NewWithURL(url string, logger *logrus.Logger) *Client {
	c := New(logger)
	c.url = url
	return c
}

type adpResponse struct {
	Players []struct {
		Name         string  `json:"name"`
		Position     string  `json:"position"`
		Team         string  `json:"team"`
		ADP          float64 `json:"adp"`
		PositionRank int     `json:"position_rank"`
	} `json:"players"`
}

// FetchADP returns the current ADP table for a league shape, keyed by
// normalized name. format is one of the Format constants.
func (c *Client) FetchADP(ctx context.Context, format string, teams, year int) (map[string]Entry, error) {
	q := url.Values{}
	q.Set("teams", strconv.Itoa(teams))
	q.Set("year", strconv.Itoa(year))
	q.Set("format", format)

	endpoint := fmt.Sprintf("%s/adp/%s?%s", c.url, format, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed adpResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing ADP response: %w", err)
	}

	lookup := make(map[string]Entry, len(parsed.Players))
	for _, p := range parsed.Players {
		if p.Name == "" {
			continue
		}
		lookup[model.NameKey(p.Name)] = Entry{
			Name:         p.Name,
			Position:     model.ParsePosition(p.Position),
			Team:         model.NormalizeTeam(p.Team),
			ADPOverall:   p.ADP,
			PositionRank: p.PositionRank,
		}
	}

	c.logger.WithFields(logrus.Fields{"format": format, "players": len(lookup)}).Info("fetched ADP data")
	return lookup, nil
}
