package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/store"
)

// PlayersHandler serves the full players.json artifact.
func PlayersHandler(st *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := st.ReadPlayers()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no player data collected yet"})
			return
		}
		c.JSON(http.StatusOK, file)
	}
}

// PlayerHandler serves one player by key, e.g. /api/players/josh_allen_qb.
func PlayerHandler(st *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := st.ReadPlayers()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no player data collected yet"})
			return
		}
		key := c.Param("key")
		player, ok := file.Players[key]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found", "key": key})
			return
		}
		c.JSON(http.StatusOK, player)
	}
}

// LeadersHandler serves the top projected players, optionally filtered by
// position: /api/leaders?position=RB&limit=20.
func LeadersHandler(st *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := st.ReadPlayers()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no player data collected yet"})
			return
		}

		limit := 25
		if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 200 {
			limit = l
		}
		var pos model.Position
		if q := c.Query("position"); q != "" {
			pos = model.ParsePosition(q)
			if !pos.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown position", "position": q})
				return
			}
		}

		leaders := make([]*model.SeasonSummary, 0, len(file.Players))
		for _, p := range file.Players {
			if pos.Valid() && p.Position != pos {
				continue
			}
			leaders = append(leaders, p)
		}
		sort.Slice(leaders, func(i, j int) bool {
			if leaders[i].ProjectedPointsPPR != leaders[j].ProjectedPointsPPR {
				return leaders[i].ProjectedPointsPPR > leaders[j].ProjectedPointsPPR
			}
			return leaders[i].PlayerName < leaders[j].PlayerName
		})
		if len(leaders) > limit {
			leaders = leaders[:limit]
		}

		c.JSON(http.StatusOK, gin.H{
			"season":  file.Metadata.Season,
			"count":   len(leaders),
			"leaders": leaders,
		})
	}
}

// InjuriesHandler serves the injuries.json artifact.
func InjuriesHandler(st *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := st.ReadInjuries()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no injury data collected yet"})
			return
		}
		c.JSON(http.StatusOK, file)
	}
}

// InsightsHandler serves the ai_insights.json artifact.
func InsightsHandler(st *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := st.ReadInsights()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no insights built yet"})
			return
		}
		c.JSON(http.StatusOK, file)
	}
}
