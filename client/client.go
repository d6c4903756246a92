// Package client is the Go consumer of the content API: typed fetchers for
// each collection plus the in-memory search service the site uses instead of
// a server-side index.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"main/model"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// envelope mirrors the server's response shape.
type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		if env.Error != "" {
			return fmt.Errorf("GET %s: %s", path, env.Error)
		}
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if dest != nil && env.Data != nil {
		return json.Unmarshal(env.Data, dest)
	}
	return nil
}

func (c *Client) Articles(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := c.get(ctx, "/api/articles", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) ArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	if err := c.get(ctx, "/api/articles/slug/"+slug, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) Techniques(ctx context.Context) ([]model.TechniqueCategory, error) {
	var categories []model.TechniqueCategory
	if err := c.get(ctx, "/api/techniques", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) TechniqueBySlug(ctx context.Context, slug string) (*model.FlatTechnique, error) {
	var technique model.FlatTechnique
	if err := c.get(ctx, "/api/techniques/slug/"+slug, &technique); err != nil {
		return nil, err
	}
	return &technique, nil
}

func (c *Client) Tools(ctx context.Context) ([]model.Tool, error) {
	var tools []model.Tool
	if err := c.get(ctx, "/api/tools", &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (c *Client) ToolBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	var tool model.Tool
	if err := c.get(ctx, "/api/tools/slug/"+slug, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *Client) Resources(ctx context.Context) ([]model.ResourceBundle, error) {
	var bundles []model.ResourceBundle
	if err := c.get(ctx, "/api/resources", &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}
