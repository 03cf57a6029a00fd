package newsprovider

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/daguenette/statbook/domain"
)

type newsResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []newsArticle `json:"articles"`
}

type newsArticle struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
}

func playerNewsFromResponse(statusCode int, data []byte, query domain.NewsQuery) (*domain.PlayerNews, error) {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, &domain.NewsAPIError{
			Status:  statusCode,
			Message: fmt.Sprintf("failed to fetch news for %q", query.PlayerName),
		}
	}

	var response newsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, &domain.NewsAPIError{
			Status:  statusCode,
			Message: fmt.Sprintf("failed to parse news response: %v", err),
		}
	}

	articles := make([]domain.Article, 0, len(response.Articles))
	for _, article := range response.Articles {
		articles = append(articles, domain.Article{
			Title:       stringOrEmpty(article.Title),
			Description: stringOrEmpty(article.Description),
			Content:     stringOrEmpty(article.Content),
			PublishedAt: stringOrEmpty(article.PublishedAt),
		})
	}

	return &domain.PlayerNews{
		Articles:     articles,
		Query:        query,
		TotalResults: response.TotalResults,
	}, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
