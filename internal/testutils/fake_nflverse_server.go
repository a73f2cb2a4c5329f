// Package testutils provides fake upstream servers for tests. Each fake
// serves small fixture payloads shaped like the real feeds.
package testutils

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const rosterCSV = `season,team,position,status,full_name,years_exp
2025,BUF,QB,ACT,Josh Allen,7
2025,SF,RB,ACT,Christian McCaffrey,8
2025,MIA,WR,ACT,Tyreek Hill,9
2025,KC,TE,ACT,Travis Kelce,12
`

const weeklyCSV = `player_display_name,position,recent_team,season,week,passing_yards,passing_tds,interceptions,rushing_yards,rushing_tds,receptions,targets,receiving_yards,receiving_tds,sack_fumbles_lost,rushing_fumbles_lost,receiving_fumbles_lost
Josh Allen,QB,BUF,2025,1,300,3,1,50,1,0,0,0,0,0,0,0
Josh Allen,QB,BUF,2025,2,250,2,0,30,0,0,0,0,0,0,1,0
Christian McCaffrey,RB,SF,2025,1,0,0,0,100,1,5,6,40,0,0,0,0
Tyreek Hill,WR,MIA,2025,1,0,0,0,10,0,8,11,120,1,0,0,0
`

const seasonalCSV = `player_display_name,position,recent_team,season,games,passing_yards,passing_tds,interceptions,rushing_yards,rushing_tds,receptions,targets,receiving_yards,receiving_tds,sack_fumbles_lost,rushing_fumbles_lost,receiving_fumbles_lost
Josh Allen,QB,BUF,2025,2,550,5,1,80,1,0,0,0,0,0,1,0
Christian McCaffrey,RB,SF,2025,1,0,0,0,100,1,5,6,40,0,0,0,0
`

const injuriesCSV = `season,week,team,position,full_name,report_status,report_primary_injury
2025,3,SF,RB,Christian McCaffrey,Out,Achilles
2025,5,SF,RB,Christian McCaffrey,Questionable,Achilles
2025,4,MIA,WR,Tyreek Hill,Questionable,Ankle
`

// FakeNflverseServer serves the roster/weekly/seasonal/injury CSV fixtures
// the way the release downloads do.
type FakeNflverseServer struct {
	s *httptest.Server
}

func NewFakeNflverseServer() *FakeNflverseServer {
	r := gin.New()
	r.GET("/rosters/:file", serveCSV(rosterCSV))
	r.GET("/player_stats/:file", func(c *gin.Context) {
		// player_stats_<season>.csv is weekly, player_stats_season_<season>.csv is seasonal
		if strings.HasPrefix(c.Param("file"), "player_stats_season") {
			c.String(http.StatusOK, seasonalCSV)
			return
		}
		c.String(http.StatusOK, weeklyCSV)
	})
	r.GET("/injuries/:file", serveCSV(injuriesCSV))

	return &FakeNflverseServer{s: httptest.NewServer(r)}
}

func serveCSV(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, body)
	}
}

func (f *FakeNflverseServer) URL() string {
	return f.s.URL
}

func (f *FakeNflverseServer) Close() {
	f.s.Close()
}

// NewFailingServer returns a server that 500s every request, for fallback
// tests.
func NewFailingServer() *httptest.Server {
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "upstream broken")
	})
	return httptest.NewServer(r)
}
