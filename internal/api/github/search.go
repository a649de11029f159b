package github

import (
	"context"
	"fmt"
	"net/url"

	gh "github.com/google/go-github/v55/github"

	apperrors "github.com/omarshaarawi/repowatch/internal/errors"
	"github.com/omarshaarawi/repowatch/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// SearchRepositories runs the configured query sorted by last update,
// newest first. Upstream order is kept as is.
func (a *API) SearchRepositories(ctx context.Context) ([]models.Repository, error) {
	var result gh.RepositoriesSearchResult
	params := url.Values{
		"q":     {a.client.Config.Query},
		"sort":  {"updated"},
		"order": {"desc"},
	}

	if err := a.client.Get(ctx, params, &result); err != nil {
		return nil, fmt.Errorf("searching repositories: %w", err)
	}

	repositories := make([]models.Repository, 0, len(result.Repositories))
	for i, item := range result.Repositories {
		repo, err := toRepository(item)
		if err != nil {
			return nil, fmt.Errorf("searching repositories: item %d: %w", i, err)
		}
		repositories = append(repositories, repo)
	}

	return repositories, nil
}

func toRepository(item *gh.Repository) (models.Repository, error) {
	if item == nil {
		return models.Repository{}, apperrors.NewParseError("null search result item", nil)
	}
	if item.GetName() == "" {
		return models.Repository{}, apperrors.NewParseError("search result item has no name", nil)
	}
	if item.GetHTMLURL() == "" {
		return models.Repository{}, apperrors.NewParseError(fmt.Sprintf("search result item %q has no html_url", item.GetName()), nil)
	}
	if item.GetStargazersCount() < 0 {
		return models.Repository{}, apperrors.NewParseError(fmt.Sprintf("search result item %q has negative stargazers_count", item.GetName()), nil)
	}

	description := item.GetDescription()
	if description == "" {
		description = models.NoDescription
	}

	return models.Repository{
		Name:            item.GetName(),
		HTMLURL:         item.GetHTMLURL(),
		Description:     description,
		StargazersCount: item.GetStargazersCount(),
		UpdatedAt:       item.GetUpdatedAt().Time,
	}, nil
}
