package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mcp-router/mcp-router/pkg/masking"
	"github.com/mcp-router/mcp-router/pkg/models"
)

// --- Request/response types ---

// RegisterServerRequest is the body of POST /api/v1/servers.
type RegisterServerRequest struct {
	ID           string            `json:"id" binding:"required"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Launch       models.LaunchSpec `json:"launch" binding:"required"`
	Capabilities []string          `json:"capabilities"`
	Tags         []string          `json:"tags"`
}

// ServerListResponse is returned by GET /api/v1/servers.
type ServerListResponse struct {
	Servers []models.ServerSpec `json:"servers"`
	Count   int                 `json:"count"`
}

// ServerDetailResponse is returned by GET /api/v1/servers/:id.
type ServerDetailResponse struct {
	Spec   models.ServerSpec     `json:"spec"`
	Tools  []models.ToolInfo     `json:"tools"`
	Health models.HealthSnapshot `json:"health"`
}

// ToolListResponse is returned by the tool listing endpoints.
type ToolListResponse struct {
	ServerID string            `json:"server_id"`
	Tools    []models.ToolInfo `json:"tools"`
}

// --- Handlers ---

// registerServerHandler handles POST /api/v1/servers.
func (s *Server) registerServerHandler(c *gin.Context) {
	var req RegisterServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spec := models.ServerSpec{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		Launch:       req.Launch,
		Capabilities: req.Capabilities,
		Tags:         req.Tags,
	}
	if err := s.router.RegisterServer(c.Request.Context(), spec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, masking.RedactSpec(spec))
}

// unregisterServerHandler handles DELETE /api/v1/servers/:id.
func (s *Server) unregisterServerHandler(c *gin.Context) {
	if err := s.router.UnregisterServer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listServersHandler handles GET /api/v1/servers.
func (s *Server) listServersHandler(c *gin.Context) {
	servers := masking.RedactSpecs(s.router.GetServers())
	c.JSON(http.StatusOK, ServerListResponse{Servers: servers, Count: len(servers)})
}

// getServerHandler handles GET /api/v1/servers/:id.
func (s *Server) getServerHandler(c *gin.Context) {
	rec, err := s.router.GetServerMetadata(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	tools := rec.Tools
	if tools == nil {
		tools = []models.ToolInfo{}
	}
	c.JSON(http.StatusOK, ServerDetailResponse{
		Spec:   masking.RedactSpec(rec.Spec),
		Tools:  tools,
		Health: rec.Health,
	})
}

// serverHealthHandler handles GET /api/v1/servers/:id/health.
func (s *Server) serverHealthHandler(c *gin.Context) {
	health, err := s.router.GetServerHealth(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, health)
}

// serverToolsHandler handles GET /api/v1/servers/:id/tools.
func (s *Server) serverToolsHandler(c *gin.Context) {
	id := c.Param("id")
	tools, err := s.router.GetTools(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToolListResponse{ServerID: id, Tools: tools})
}

// refreshToolsHandler handles POST /api/v1/servers/:id/tools/refresh.
func (s *Server) refreshToolsHandler(c *gin.Context) {
	id := c.Param("id")
	tools, err := s.router.RefreshTools(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToolListResponse{ServerID: id, Tools: tools})
}

// usageStatsHandler handles GET /api/v1/servers/:id/usage.
func (s *Server) usageStatsHandler(c *gin.Context) {
	windowDays := 0
	if raw := c.Query("window_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window_days must be an integer"})
			return
		}
		windowDays = parsed
	}

	stats, err := s.router.GetUsageStats(c.Request.Context(), c.Param("id"), windowDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
