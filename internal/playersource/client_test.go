package playersource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/store"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func newLocalStore(t *testing.T) *store.JSONStore {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC))
	return store.NewJSONStore(t.TempDir(), mock)
}

func TestLoadPrefersLocalArtifact(t *testing.T) {
	st := newLocalStore(t)
	_, err := st.WritePlayers(2025, []*model.SeasonSummary{
		{Key: "josh_allen_qb", PlayerName: "Josh Allen", Position: model.PosQB, Team: "BUF", Season: 2025},
	})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("published copy should not be fetched when local data exists")
	}))
	defer srv.Close()

	c := NewWithURL(srv.URL, st, testLogger())
	file, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, file.Players, 1)
	assert.Equal(t, "Josh Allen", file.Players["josh_allen_qb"].PlayerName)
}

func TestLoadFallsBackToPublishedCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"metadata": {"version": "2.0", "generated_at": "2025-09-01T00:00:00Z", "season": 2025},
			"players": {
				"christian_mccaffrey_rb": {"player_name": "Christian McCaffrey", "position": "RB", "team": "SF", "season": 2025}
			}
		}`))
	}))
	defer srv.Close()

	c := NewWithURL(srv.URL, newLocalStore(t), testLogger())
	file, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, file.Players, 1)
	p := file.Players["christian_mccaffrey_rb"]
	assert.Equal(t, "Christian McCaffrey", p.PlayerName)
	assert.Equal(t, "christian_mccaffrey_rb", p.Key, "map key restored onto the record")
}

func TestLoadSurfacesUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWithURL(srv.URL, newLocalStore(t), testLogger())
	_, err := c.Load(context.Background())
	assert.Error(t, err)
}
