package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jamesexley/fantasy-football-go/internal/collector"
	"github.com/jamesexley/fantasy-football-go/internal/ffcalc"
	"github.com/jamesexley/fantasy-football-go/internal/insights"
	"github.com/jamesexley/fantasy-football-go/internal/nflverse"
	"github.com/jamesexley/fantasy-football-go/internal/playersource"
	"github.com/jamesexley/fantasy-football-go/internal/store"
)

func main() {
	godotenv.Load()
	logger := logrus.New()
	ctx := context.Background()

	season := seasonFromEnv()
	dataDir := getenv("JSON_DATA_DIR", "json_data")

	c := clock.New()
	st := store.NewJSONStore(dataDir, c)
	col := collector.New(
		nflverse.New(logger),
		ffcalc.New(logger),
		playersource.New(st, logger),
		insights.NewAnalyzer(c, logger),
		st, nil, logger,
	)

	fmt.Printf("Building draft insights for the %d season...\n", season)
	file, err := col.BuildInsights(ctx, season)
	if err != nil {
		log.Fatalf("Insights build failed: %v", err)
	}

	report := file.Insights
	fmt.Println("Analysis complete:")
	fmt.Printf("   Players analyzed: %d\n", report.Metadata.PlayersAnalyzed)
	fmt.Printf("   Roster corrections: %d\n", report.Metadata.RosterCorrections)
	fmt.Printf("   ADP updates: %d\n", report.Metadata.ADPUpdates)
	fmt.Printf("   Must-starts identified: %d\n", len(report.MustStarts))
	fmt.Printf("   Sleepers identified: %d\n", len(report.Sleepers))
	fmt.Printf("   Potential busts: %d\n", len(report.Busts))
	fmt.Printf("Written to %s.\n", st.Path(store.InsightsFileName))
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
