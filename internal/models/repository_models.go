package models

import "time"

// NoDescription replaces a null or empty upstream description.
const NoDescription = "No description"

// TimestampFormat renders capture times the way browsers print Date.toISOString.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

type Repository struct {
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Snapshot is the complete cached result set. It is replaced as a whole and
// must not be modified once it has been saved.
type Snapshot struct {
	CapturedAt   time.Time
	Repositories []Repository
}

// EmptySnapshot returns the sentinel served before the first successful refresh.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		CapturedAt:   time.Unix(0, 0).UTC(),
		Repositories: []Repository{},
	}
}

func NewSnapshot(capturedAt time.Time, repositories []Repository) *Snapshot {
	if repositories == nil {
		repositories = []Repository{}
	}
	return &Snapshot{
		CapturedAt:   capturedAt,
		Repositories: repositories,
	}
}

func (s *Snapshot) Count() int {
	return len(s.Repositories)
}

// DataResponse is the body of GET /data.
type DataResponse struct {
	Success      bool         `json:"success"`
	Count        int          `json:"count"`
	LastUpdated  string       `json:"lastUpdated"`
	Repositories []Repository `json:"repositories"`
}

func NewDataResponse(s *Snapshot) DataResponse {
	return DataResponse{
		Success:      true,
		Count:        s.Count(),
		LastUpdated:  s.CapturedAt.UTC().Format(TimestampFormat),
		Repositories: s.Repositories,
	}
}
