package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/repowatch/internal/models"
)

// Client reads the cached snapshot from a running repowatch server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetData retrieves the current snapshot
func (c *Client) GetData(ctx context.Context) (*models.DataResponse, error) {
	var response models.DataResponse
	if err := c.get(ctx, "/data", &response); err != nil {
		return nil, err
	}
	if !response.Success {
		return nil, fmt.Errorf("server reported success=false")
	}
	return &response, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// Match keeps the repositories whose name or description fuzzily contains
// term, ignoring case. Order is preserved; an empty term keeps everything.
func Match(repositories []models.Repository, term string) []models.Repository {
	if term == "" {
		return repositories
	}

	matched := make([]models.Repository, 0, len(repositories))
	for _, repo := range repositories {
		if fuzzy.MatchFold(term, repo.Name) || fuzzy.MatchFold(term, repo.Description) {
			matched = append(matched, repo)
		}
	}
	return matched
}
