package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/metadata"
	"github.com/mcp-router/mcp-router/pkg/registry"
)

// respondError maps engine errors to HTTP error responses.
func respondError(c *gin.Context, err error) {
	var verr *adapter.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   verr.Error(),
			"tool":    verr.Tool,
			"missing": verr.Missing,
		})
		return
	}

	var terr *adapter.ToolError
	if errors.As(err, &terr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  terr.Error(),
			"server": terr.ServerID,
			"tool":   terr.Tool,
		})
		return
	}

	switch {
	case errors.Is(err, registry.ErrServerNotFound), errors.Is(err, metadata.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, adapter.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, adapter.ErrNoAdapter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
