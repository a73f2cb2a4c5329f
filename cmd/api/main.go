package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/collector"
	"github.com/jamesexley/fantasy-football-go/internal/db"
	"github.com/jamesexley/fantasy-football-go/internal/ffcalc"
	"github.com/jamesexley/fantasy-football-go/internal/handlers"
	"github.com/jamesexley/fantasy-football-go/internal/insights"
	"github.com/jamesexley/fantasy-football-go/internal/middleware"
	"github.com/jamesexley/fantasy-football-go/internal/nflverse"
	"github.com/jamesexley/fantasy-football-go/internal/playersource"
	"github.com/jamesexley/fantasy-football-go/internal/store"
	"github.com/jamesexley/fantasy-football-go/internal/worker"
)

func main() {
	godotenv.Load()
	logger := logrus.New()
	ctx := context.Background()

	season := seasonFromEnv()
	dataDir := getenv("JSON_DATA_DIR", "json_data")

	c := clock.New()
	st := store.NewJSONStore(dataDir, c)

	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	if pool != nil {
		defer pool.Close()
		fmt.Println("Connected to Database")
	}

	col := collector.New(
		nflverse.New(logger),
		ffcalc.New(logger),
		playersource.New(st, logger),
		insights.NewAnalyzer(c, logger),
		st, pool, logger,
	)

	// Keep artifacts fresh while the server runs.
	worker.StartRefreshWorker(ctx, col, st.PlayersAge, season, c, logger)

	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{corsOrigin},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Admin-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	rl := middleware.NewRateLimiter()

	api := r.Group("/api")
	{
		api.GET("/players", handlers.PlayersHandler(st))
		api.GET("/players/:key", handlers.PlayerHandler(st))
		api.GET("/leaders", handlers.LeadersHandler(st))
		api.GET("/injuries", handlers.InjuriesHandler(st))
		api.GET("/insights", handlers.InsightsHandler(st))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AdminKey())
	{
		admin.POST("/refresh", rl.Limit(2, time.Minute), handlers.RefreshHandler(col, season))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "NFL data API is live"})
	})

	port := getenv("PORT", "8080")
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	r.Run(":" + port)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func seasonFromEnv() int {
	if s := os.Getenv("SEASON"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	now := time.Now()
	year := now.Year()
	if now.Month() < time.March {
		year--
	}
	return year
}
