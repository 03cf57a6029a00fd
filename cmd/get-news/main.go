// Command get-news fetches and prints news articles for a player, showing
// the news query builder.
//
// Usage:
//
//	STATBOOK_STATS_API_KEY=... STATBOOK_NEWS_API_KEY=... get-news "Josh Allen" [from-date]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/daguenette/statbook"
	"github.com/daguenette/statbook/domain"
	"github.com/daguenette/statbook/internal/strutils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 || os.Args[1] == "" {
		log.Fatal("No player name provided")
	}
	player := strutils.ToDashCase(os.Args[1])

	query := domain.NewsQueryForPlayer(player).
		WithPageSize(10).
		WithSortBy(domain.SortByRecency)

	// Date filtering needs a paid NewsAPI plan, so it is opt-in
	if len(os.Args) > 2 {
		query = query.WithFromDate(os.Args[2])
	}

	client, err := statbook.NewClientFromEnv()
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	news, err := client.GetPlayerNews(context.Background(), query)
	if err != nil {
		log.Fatalf("Failed to get player news: %v", err)
	}

	fmt.Printf("%d articles (of %d total) for %s:\n", len(news.Articles), news.TotalResults, player)
	for _, article := range news.Articles {
		fmt.Printf("  - %s (%s)\n", article.Title, article.PublishedAt)
		if article.Description != "" {
			fmt.Printf("    %s\n", article.Description)
		}
	}
}
