package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"main/model"
)

// SearchResult is one matched item tagged with its source collection.
type SearchResult struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Category    string `json:"category,omitempty"`
	ReadTime    string `json:"readTime,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

// SearchService filters whole collections in memory. There is no server-side
// index; the corpus is small enough that a substring scan is the whole
// design. Callers are responsible for debouncing and for discarding stale
// responses when a newer query is already in flight.
type SearchService struct {
	api *Client
}

func NewSearchService(api *Client) *SearchService {
	return &SearchService{api: api}
}

func matches(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// SearchAll fetches the articles, techniques, and tools collections, keeps
// every item whose title or description contains the query as a
// case-insensitive substring, and tags each hit with its collection name.
// Results keep fetch order, then natural array order. Technique categories
// are flattened so individual entries are searchable.
func (s *SearchService) SearchAll(ctx context.Context, query string) ([]SearchResult, error) {
	results := []SearchResult{}

	articles, err := s.api.Articles(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		if matches(query, a.Title) {
			results = append(results, SearchResult{
				Type:     "articles",
				ID:       a.ID,
				Title:    a.Title,
				Excerpt:  a.Excerpt,
				Category: a.Category,
				ReadTime: a.ReadTime,
				Slug:     a.Slug,
			})
		}
	}

	categories, err := s.api.Techniques(ctx)
	if err != nil {
		return nil, err
	}
	for _, cat := range categories {
		for _, entry := range cat.Techniques {
			if matches(query, entry.Title, entry.Description) {
				results = append(results, SearchResult{
					Type:        "techniques",
					ID:          entry.ID,
					Title:       entry.Title,
					Description: entry.Description,
					Category:    cat.Category,
					Slug:        entry.Slug,
				})
			}
		}
	}

	tools, err := s.api.Tools(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tools {
		if matches(query, t.Title, t.Description) {
			results = append(results, SearchResult{
				Type:        "tools",
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Category:    t.Category,
				Slug:        t.Slug,
			})
		}
	}

	return results, nil
}

// SearchArticles restricts the substring match to article titles and
// excerpts.
func (s *SearchService) SearchArticles(ctx context.Context, query string) ([]model.Article, error) {
	articles, err := s.api.Articles(ctx)
	if err != nil {
		return nil, err
	}

	matched := []model.Article{}
	for _, a := range articles {
		if matches(query, a.Title, a.Excerpt) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// Debounce wraps fn so rapid successive calls collapse into one invocation
// after d of quiet. It does not cancel an invocation already running.
func Debounce(d time.Duration, fn func(query string)) func(string) {
	var mu sync.Mutex
	var timer *time.Timer

	return func(query string) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			fn(query)
		})
	}
}
