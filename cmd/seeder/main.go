package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/database"
	"github.com/mauv0809/courtside/internal/stats"
)

var (
	roster = []struct {
		name     string
		jersey   int
		position string
	}{
		{"Jordan Ellis", 3, "PG"},
		{"Marcus Webb", 11, "SG"},
		{"Tyrese Cole", 7, "SF"},
		{"Andre Moss", 23, "PF"},
		{"Samir Okafor", 34, "C"},
		{"Devin Park", 5, "G"},
		{"Luis Ortega", 14, "F"},
		{"Caleb Brooks", 21, "C"},
	}
	opponents = []string{"Eagles", "Hawks", "Lions", "Falcons", "Wolves", "Bears"}
)

// Simplified config loading for the script
func loadConfig() (dbName, primaryURL, authToken string) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName = os.Getenv("DB_NAME")
	primaryURL = os.Getenv("TURSO_PRIMARY_URL")
	authToken = os.Getenv("TURSO_AUTH_TOKEN")
	if dbName == "" && primaryURL == "" {
		log.Fatal("Error: set DB_NAME or TURSO_PRIMARY_URL")
	}
	return dbName, primaryURL, authToken
}

func main() {
	numGames := flag.Int("games", 12, "number of games to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	log.Info("Starting database seeder...", "games", *numGames, "seed", *seed)
	dbName, primaryURL, authToken := loadConfig()

	db, teardown, err := database.InitDB(dbName, primaryURL, authToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(*seed))
	clubStore := club.New(db)
	lines := boxscore.New(db)
	startTime := time.Now()

	players := make([]club.Player, 0, len(roster))
	for _, r := range roster {
		jersey, position := r.jersey, r.position
		p, err := clubStore.AddPlayer(ctx, club.Player{Name: r.name, JerseyNumber: &jersey, Position: &position})
		if err != nil {
			log.Fatalf("Failed to insert player %s: %s", r.name, err)
		}
		players = append(players, p)
	}
	log.Info("Inserted players", "count", len(players))

	season := time.Date(2024, time.November, 2, 0, 0, 0, 0, time.UTC)
	written := 0
	for i := 0; i < *numGames; i++ {
		location := "Home"
		if i%2 == 1 {
			location = "Away"
		}
		game, err := clubStore.AddGame(ctx, club.Game{
			Date:     season.AddDate(0, 0, 7*i).Format("2006-01-02"),
			Opponent: opponents[i%len(opponents)],
			Location: &location,
		})
		if errors.Is(err, club.ErrGameExists) {
			log.Warn("Game already seeded, skipping", "index", i)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to insert game: %s", err)
		}

		margin := rng.Intn(31) - 15
		for j, p := range players {
			if _, err := lines.Create(ctx, randomLine(rng, p.ID, game.ID, j < 5, margin)); err != nil {
				log.Fatalf("Failed to insert stat line: %s", err)
			}
			written++
		}
	}

	log.Info("Successfully seeded demo data.", "stat_lines", written, "duration", time.Since(startTime))
	fmt.Println("Seeded", len(players), "players and", written, "stat lines.")
}

// randomLine produces a plausible box-score line. Starters play more.
func randomLine(rng *rand.Rand, playerID, gameID int64, starter bool, margin int) stats.StatLine {
	minutes := 8 + rng.Float64()*14
	if starter {
		minutes = 24 + rng.Float64()*12
	}
	fga := int(minutes/3) + rng.Intn(4)
	fg := rng.Intn(fga + 1)
	fga3 := rng.Intn(fga/2 + 1)
	fg3 := rng.Intn(min(fga3, fg) + 1)
	fta := rng.Intn(7)
	ft := rng.Intn(fta + 1)
	rebounds := rng.Intn(int(minutes/4) + 2)

	return stats.StatLine{
		PlayerID:  playerID,
		GameID:    gameID,
		Minutes:   stats.Minutes(minutes),
		Points:    2*(fg-fg3) + 3*fg3 + ft,
		Rebounds:  rebounds,
		OREB:      rng.Intn(rebounds/3 + 1),
		Assists:   rng.Intn(7),
		Steals:    rng.Intn(3),
		Blocks:    rng.Intn(3),
		Turnovers: rng.Intn(4),
		Fouls:     rng.Intn(5),
		FG:        fg,
		FGA:       fga,
		FG3:       fg3,
		FGA3:      fga3,
		FT:        ft,
		FTA:       fta,
		PM:        margin + rng.Intn(9) - 4,
		Starter:   starter,
	}
}
