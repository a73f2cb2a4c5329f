package testutils

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

const adpJSON = `{
  "status": "Success",
  "meta": {"type": "PPR", "teams": 12, "rounds": 15},
  "players": [
    {"player_id": 1, "name": "Christian McCaffrey", "position": "RB", "team": "SF", "adp": 1.2, "position_rank": 1},
    {"player_id": 2, "name": "Tyreek Hill", "position": "WR", "team": "MIA", "adp": 4.8, "position_rank": 1},
    {"player_id": 3, "name": "Josh Allen", "position": "QB", "team": "BUF", "adp": 22.4, "position_rank": 2},
    {"player_id": 4, "name": "Deebo Samuel Sr.", "position": "WR", "team": "SF", "adp": 38.0, "position_rank": 12}
  ]
}`

// FakeADPServer serves the Fantasy Football Calculator ADP fixture.
type FakeADPServer struct {
	s *httptest.Server

	// LastFormat and LastQuery capture the most recent request for
	// assertions.
	LastFormat string
	LastQuery  map[string]string
}

func NewFakeADPServer() *FakeADPServer {
	f := &FakeADPServer{}
	r := gin.New()
	r.GET("/adp/:format", func(c *gin.Context) {
		f.LastFormat = c.Param("format")
		f.LastQuery = map[string]string{
			"teams":  c.Query("teams"),
			"year":   c.Query("year"),
			"format": c.Query("format"),
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, adpJSON)
	})
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeADPServer) URL() string {
	return f.s.URL
}

func (f *FakeADPServer) Close() {
	f.s.Close()
}
