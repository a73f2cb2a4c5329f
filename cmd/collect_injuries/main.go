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
	"github.com/jamesexley/fantasy-football-go/internal/nflverse"
	"github.com/jamesexley/fantasy-football-go/internal/store"
)

func main() {
	godotenv.Load()
	logger := logrus.New()
	ctx := context.Background()

	season := seasonFromEnv()
	dataDir := getenv("JSON_DATA_DIR", "json_data")

	st := store.NewJSONStore(dataDir, clock.New())
	col := collector.New(nflverse.New(logger), ffcalc.New(logger), nil, nil, st, nil, logger)

	fmt.Printf("Starting injury collection for the %d season...\n", season)
	file, err := col.CollectInjuries(ctx, season)
	if err != nil {
		log.Fatalf("Injury collection failed: %v", err)
	}

	fmt.Printf("Done. %d players with %d report entries written to %s.\n",
		file.Metadata.Counts["players"], file.Metadata.Counts["reports"],
		st.Path(store.InjuriesFileName))
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
