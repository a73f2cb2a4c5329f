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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jamesexley/fantasy-football-go/internal/collector"
	"github.com/jamesexley/fantasy-football-go/internal/db"
	"github.com/jamesexley/fantasy-football-go/internal/ffcalc"
	"github.com/jamesexley/fantasy-football-go/internal/model"
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

	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	if pool != nil {
		defer pool.Close()
		fmt.Println("Connected to Database")
	} else {
		fmt.Println("DATABASE_URL not set, writing JSON only")
	}

	col := collector.New(nflverse.New(logger), ffcalc.New(logger), nil, nil, st, pool, logger)

	fmt.Printf("Starting player collection for the %d season...\n", season)
	file, err := col.CollectPlayers(ctx, season)
	if err != nil {
		log.Fatalf("Player collection failed: %v", err)
	}

	var totalYards float64
	for _, p := range file.Players {
		totalYards += p.Stats[model.StatPassingYards] +
			p.Stats[model.StatRushingYards] +
			p.Stats[model.StatReceivingYards]
	}

	p := message.NewPrinter(language.English)
	p.Printf("Done. %d players written to %s (%d total yards).\n",
		len(file.Players), st.Path(store.PlayersFileName), int64(totalYards))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// seasonFromEnv reads SEASON, defaulting to the season in progress: before
// March the previous calendar year's season is still the current one.
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
