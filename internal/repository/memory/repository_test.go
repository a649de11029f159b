package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/omarshaarawi/repowatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generation builds a snapshot whose records all carry the same tag, so a
// torn read would show up as mixed tags.
func generation(tag, size int) *models.Snapshot {
	repos := make([]models.Repository, size)
	for i := range repos {
		repos[i] = models.Repository{
			Name:            fmt.Sprintf("gen-%d-repo-%d", tag, i),
			StargazersCount: tag,
		}
	}
	return models.NewSnapshot(time.Unix(int64(tag), 0), repos)
}

func TestNewRepository_Sentinel(t *testing.T) {
	repo := NewRepository()

	s := repo.GetSnapshot()
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Count())
	assert.True(t, s.CapturedAt.Equal(time.Unix(0, 0)))
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	repo := NewRepository()
	first := generation(1, 3)
	second := generation(2, 5)

	repo.SaveSnapshot(first)
	assert.Same(t, first, repo.GetSnapshot())

	repo.SaveSnapshot(second)
	assert.Same(t, second, repo.GetSnapshot())
}

func TestSaveSnapshot_IgnoresNil(t *testing.T) {
	repo := NewRepository()
	s := generation(1, 2)
	repo.SaveSnapshot(s)

	repo.SaveSnapshot(nil)

	assert.Same(t, s, repo.GetSnapshot())
}

func TestConcurrentReadsNeverTorn(t *testing.T) {
	repo := NewRepository()
	repo.SaveSnapshot(generation(0, 10))

	const writes = 200
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 1; i <= writes; i++ {
			repo.SaveSnapshot(generation(i, 10+i%7))
		}
	}()

	errs := make(chan error, 8)
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				s := repo.GetSnapshot()
				tag := int(s.CapturedAt.Unix())
				for _, rec := range s.Repositories {
					if rec.StargazersCount != tag {
						errs <- fmt.Errorf("snapshot %d contains record from %d", tag, rec.StargazersCount)
						return
					}
				}
				select {
				case <-done:
					return
				default:
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	assert.Equal(t, int64(writes), repo.GetSnapshot().CapturedAt.Unix())
}
