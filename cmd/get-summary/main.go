// Command get-summary fetches and prints the combined stats and news summary
// for a player.
//
// Usage:
//
//	STATBOOK_STATS_API_KEY=... STATBOOK_NEWS_API_KEY=... get-summary "Josh Allen"
//
// Credentials may also be placed in a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/daguenette/statbook"
	"github.com/daguenette/statbook/domain"
	"github.com/joho/godotenv"
)

func main() {
	// Best effort: a missing .env file just means the environment is already set
	_ = godotenv.Load()

	if len(os.Args) < 2 || os.Args[1] == "" {
		log.Fatal("No player name provided")
	}
	player := os.Args[1]

	client, err := statbook.NewClientFromEnv()
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	summary, err := client.GetPlayerSummary(context.Background(), player, nil, domain.SeasonLatest)
	if err != nil {
		log.Fatalf("Failed to get player summary: %v", err)
	}

	fmt.Printf("%s %s - #%d, %s (%s)\n", summary.FirstName, summary.LastName, summary.JerseyNumber, summary.PrimaryPosition, summary.CurrentTeam)
	fmt.Printf("Season: %s, games played: %d\n", summary.Season, summary.GamesPlayed)
	if summary.Injury != "" {
		fmt.Printf("Injury: %s\n", summary.Injury)
	}

	if len(summary.NewsArticles) == 0 {
		fmt.Println("No recent news")
		return
	}

	fmt.Printf("Recent news (%d):\n", len(summary.NewsArticles))
	for _, article := range summary.NewsArticles {
		fmt.Printf("  - %s (%s)\n", article.Title, article.PublishedAt)
	}
}
