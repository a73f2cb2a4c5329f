// Package playersource loads the players.json blob the insights pass
// analyzes: the locally collected file when present, otherwise the published
// copy at a fixed URL.
package playersource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/store"
)

// PublishedURL is where the collected players.json is republished.
const PublishedURL = "https://raw.githubusercontent.com/JamesExley95/sleeper-player-database/main/json_data/players.json"

type Client struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
	local      *store.JSONStore
}

func New(local *store.JSONStore, logger *logrus.Logger) *Client {
	return &Client{
		url: PublishedURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		local:  local,
	}
}

func NewWithURL(url string, local *store.JSONStore, logger *logrus.Logger) *Client {
	c := New(local, logger)
	c.url = url
	return c
}

// Load returns the player database, preferring the local artifact and
// falling back to the published URL.
func (c *Client) Load(ctx context.Context) (*store.PlayersFile, error) {
	if file, err := c.local.ReadPlayers(); err == nil {
		c.logger.WithField("players", len(file.Players)).Info("loaded local player data")
		return file, nil
	}

	c.logger.WithField("url", c.url).Info("no local player data, fetching published copy")
	return c.fetch(ctx)
}

func (c *Client) fetch(ctx context.Context) (*store.PlayersFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching player data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var file store.PlayersFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("error parsing player data: %w", err)
	}
	for key, p := range file.Players {
		p.Key = key
	}
	return &file, nil
}
