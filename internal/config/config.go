package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	GitHubAPI GitHubAPI
	Server    Server
}

// GitHubAPI configures the upstream repository search. Token is not marked
// required: a missing token fails each refresh instead of the whole process.
type GitHubAPI struct {
	URL     string        `envconfig:"GITHUB_API_URL" default:"https://api.github.com/search/repositories"`
	Query   string        `envconfig:"QUERY" default:"rootless+jailbreak"`
	Token   string        `envconfig:"GITHUB_ACCESS_TOKEN"`
	Timeout time.Duration `envconfig:"GITHUB_TIMEOUT" default:"30s"`
}

type Server struct {
	Addr      string `envconfig:"ADDR" default:":3000"`
	StaticDir string `envconfig:"STATIC_DIR" default:"dist"`
	Schedule  string `envconfig:"REFRESH_SCHEDULE" default:"0 */6 * * *"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
