package memory

import (
	"sync"

	"github.com/omarshaarawi/repowatch/internal/models"
)

// Repository holds the live snapshot. Saving swaps the whole pointer, so a
// reader sees either the previous snapshot or the new one, never a mix.
type Repository struct {
	snapshot *models.Snapshot
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{snapshot: models.EmptySnapshot()}
}

func (r *Repository) SaveSnapshot(snapshot *models.Snapshot) {
	if snapshot == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
}

func (r *Repository) GetSnapshot() *models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}
