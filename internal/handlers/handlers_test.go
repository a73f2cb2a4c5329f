package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(t *testing.T) *store.JSONStore {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))
	return store.NewJSONStore(t.TempDir(), mock)
}

func seedPlayers(t *testing.T, st *store.JSONStore) {
	t.Helper()
	summaries := []*model.SeasonSummary{
		{
			Key: "josh_allen_qb", PlayerName: "Josh Allen", Position: model.PosQB,
			Team: "BUF", Season: 2025, ProjectedPointsPPR: 380.5,
		},
		{
			Key: "christian_mccaffrey_rb", PlayerName: "Christian McCaffrey", Position: model.PosRB,
			Team: "SF", Season: 2025, ProjectedPointsPPR: 320.0,
		},
		{
			Key: "bijan_robinson_rb", PlayerName: "Bijan Robinson", Position: model.PosRB,
			Team: "ATL", Season: 2025, ProjectedPointsPPR: 290.0,
		},
	}
	_, err := st.WritePlayers(2025, summaries)
	require.NoError(t, err)
}

func TestPlayersHandlerBeforeCollection(t *testing.T) {
	st := newTestStore(t)
	router := gin.New()
	router.GET("/api/players", PlayersHandler(st))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlayersHandlerServesArtifact(t *testing.T) {
	st := newTestStore(t)
	seedPlayers(t, st)
	router := gin.New()
	router.GET("/api/players", PlayersHandler(st))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var file store.PlayersFile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &file))
	assert.Len(t, file.Players, 3)
	assert.Equal(t, 2025, file.Metadata.Season)
}

func TestPlayerHandler(t *testing.T) {
	st := newTestStore(t)
	seedPlayers(t, st)
	router := gin.New()
	router.GET("/api/players/:key", PlayerHandler(st))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/players/josh_allen_qb", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var p model.SeasonSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Josh Allen", p.PlayerName)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/players/nobody_qb", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeadersHandlerFiltersAndLimits(t *testing.T) {
	st := newTestStore(t)
	seedPlayers(t, st)
	router := gin.New()
	router.GET("/api/leaders", LeadersHandler(st))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaders?position=RB&limit=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Season  int                    `json:"season"`
		Count   int                    `json:"count"`
		Leaders []*model.SeasonSummary `json:"leaders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Leaders, 1)
	assert.Equal(t, "Christian McCaffrey", resp.Leaders[0].PlayerName)
}

func TestLeadersHandlerRejectsUnknownPosition(t *testing.T) {
	st := newTestStore(t)
	seedPlayers(t, st)
	router := gin.New()
	router.GET("/api/leaders", LeadersHandler(st))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaders?position=GOALIE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubRefresher struct {
	err    error
	season int
}

func (s *stubRefresher) Refresh(ctx context.Context, season int) error {
	s.season = season
	return s.err
}

func TestRefreshHandler(t *testing.T) {
	r := &stubRefresher{}
	router := gin.New()
	router.POST("/admin/refresh", RefreshHandler(r, 2025))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2025, r.season)
}

func TestRefreshHandlerUpstreamFailure(t *testing.T) {
	r := &stubRefresher{err: errors.New("nflverse unreachable")}
	router := gin.New()
	router.POST("/admin/refresh", RefreshHandler(r, 2025))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
