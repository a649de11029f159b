package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarshaarawi/repowatch/internal/models"
)

const DataPath = "/data"

type SnapshotReader interface {
	GetSnapshot() *models.Snapshot
}

// Handler handles HTTP requests
type Handler struct {
	repo   SnapshotReader
	assets *Assets
}

// NewHandler creates a new HTTP handler
func NewHandler(repo SnapshotReader, staticDir string) *Handler {
	return &Handler{
		repo:   repo,
		assets: NewAssets(staticDir),
	}
}

// GetData returns the current snapshot. It never waits on a refresh.
// GET /data
func (h *Handler) GetData(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewDataResponse(h.repo.GetSnapshot()))
}
