package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/version"
)

// --- Response types ---

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Servers ServerStats `json:"servers"`
}

// ServerStats summarizes the registered server population.
type ServerStats struct {
	Total  int `json:"total"`
	Online int `json:"online"`
}

// PluginInfo describes one installed plugin.
type PluginInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// AdapterInfo describes one registered transport adapter.
type AdapterInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Kind    string `json:"kind"`
}

// --- Handlers ---

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	health := s.router.GetAllServerHealth()
	online := 0
	for _, snap := range health {
		if snap.Status == models.StatusOnline {
			online++
		}
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
		Servers: ServerStats{Total: len(health), Online: online},
	})
}

// capabilitiesHandler handles GET /api/v1/capabilities.
func (s *Server) capabilitiesHandler(c *gin.Context) {
	caps, err := s.router.GetAllCapabilities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"capabilities": caps})
}

// serversByCapabilityHandler handles GET /api/v1/capabilities/:cap/servers.
func (s *Server) serversByCapabilityHandler(c *gin.Context) {
	ids := s.router.GetServersByCapability(c.Param("cap"))
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"servers": ids})
}

// tagsHandler handles GET /api/v1/tags.
func (s *Server) tagsHandler(c *gin.Context) {
	tags, err := s.router.GetAllTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// serversByTagHandler handles GET /api/v1/tags/:tag/servers.
func (s *Server) serversByTagHandler(c *gin.Context) {
	ids, err := s.router.GetServersByTag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"servers": ids})
}

// cacheStatsHandler handles GET /api/v1/cache/stats.
func (s *Server) cacheStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.router.GetCacheStats())
}

// clearCacheHandler handles DELETE /api/v1/cache.
func (s *Server) clearCacheHandler(c *gin.Context) {
	s.router.ClearCache()
	c.Status(http.StatusNoContent)
}

// listPluginsHandler handles GET /api/v1/plugins.
func (s *Server) listPluginsHandler(c *gin.Context) {
	infos := []PluginInfo{}
	for _, name := range s.router.GetAllPlugins() {
		if p, ok := s.router.GetPlugin(name); ok {
			infos = append(infos, PluginInfo{
				Name:        p.Name(),
				Version:     p.Version(),
				Description: p.Description(),
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{"plugins": infos})
}

// getPluginHandler handles GET /api/v1/plugins/:name.
func (s *Server) getPluginHandler(c *gin.Context) {
	p, ok := s.router.GetPlugin(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "plugin not found"})
		return
	}
	c.JSON(http.StatusOK, PluginInfo{
		Name:        p.Name(),
		Version:     p.Version(),
		Description: p.Description(),
	})
}

// listAdaptersHandler handles GET /api/v1/adapters.
func (s *Server) listAdaptersHandler(c *gin.Context) {
	infos := []AdapterInfo{}
	for _, a := range s.router.GetAllAdapters() {
		kind := string(a.Kind())
		if kind == "" {
			kind = "generic"
		}
		infos = append(infos, AdapterInfo{
			Name:    a.Name(),
			Version: a.Version(),
			Kind:    kind,
		})
	}
	c.JSON(http.StatusOK, gin.H{"adapters": infos})
}
