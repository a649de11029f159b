package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/omarshaarawi/repowatch/internal/errors"
)

const defaultDocument = "/index.html"

// Assets reads pre-built front-end files from a directory. It never writes.
type Assets struct {
	root string
}

func NewAssets(root string) *Assets {
	return &Assets{root: root}
}

// Read resolves a request path inside the assets root and returns the file
// content with its content type. "/" maps to the default document.
func (a *Assets) Read(requestPath string) ([]byte, string, error) {
	if requestPath == "" || requestPath == "/" {
		requestPath = defaultDocument
	}
	// Cleaning a rooted path drops any "..", so the result stays under root.
	clean := path.Clean("/" + requestPath)
	full := filepath.Join(a.root, filepath.FromSlash(clean))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, "", apperrors.NewNotFoundError(clean)
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", clean, err)
	}

	return content, contentType(clean), nil
}

func contentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".html"):
		return "text/html"
	case strings.HasSuffix(name, ".js"):
		return "text/javascript"
	case strings.HasSuffix(name, ".css"):
		return "text/css"
	default:
		return "text/plain"
	}
}

// ServeStatic answers every path other than /data from the assets directory.
func (h *Handler) ServeStatic(c *gin.Context) {
	content, ct, err := h.assets.Read(c.Request.URL.Path)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		slog.Error("Error serving static file", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Data(http.StatusOK, ct, content)
}
