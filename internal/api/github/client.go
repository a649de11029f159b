package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"

	"github.com/omarshaarawi/repowatch/internal/config"
	apperrors "github.com/omarshaarawi/repowatch/internal/errors"
)

// tokenType makes oauth2 send "Authorization: token <credential>".
const tokenType = "token"

type Client struct {
	httpClient *http.Client
	Config     config.GitHubAPI
}

func NewClient(cfg config.GitHubAPI) *Client {
	httpClient := &http.Client{}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   tokenType,
		})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		Config:     cfg,
	}
}

// Get issues a GET against the configured search URL and decodes the JSON
// body into result. The credential is checked before any request is made.
func (c *Client) Get(ctx context.Context, params url.Values, result interface{}) error {
	if c.Config.Token == "" {
		return apperrors.NewConfigurationError("GITHUB_ACCESS_TOKEN", "GitHub access token is not set")
	}

	u, err := url.Parse(c.Config.URL)
	if err != nil {
		return fmt.Errorf("error parsing url: %w", err)
	}

	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewFetchError(resp.StatusCode, reasonPhrase(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return apperrors.NewParseError("error decoding response", err)
	}

	return nil
}

// reasonPhrase strips the numeric code from resp.Status ("404 Not Found").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
