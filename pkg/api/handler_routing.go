package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/router"
)

// --- Request/response types ---

// QueryRequest is the body of POST /api/v1/route and POST /api/v1/analyze.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// ExecuteToolRequest is the body of POST /api/v1/servers/:id/tools/:tool/call.
type ExecuteToolRequest struct {
	Args    map[string]any `json:"args"`
	NoCache bool           `json:"no_cache"`
}

// ExecuteToolResponse is the result of a tool invocation.
type ExecuteToolResponse struct {
	ServerID string              `json:"server_id"`
	Tool     string              `json:"tool"`
	Result   *adapter.ToolResult `json:"result"`
	Text     string              `json:"text"`
}

// --- Handlers ---

// routeHandler handles POST /api/v1/route.
func (s *Server) routeHandler(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.router.Route(c.Request.Context(), req.Query))
}

// analyzeHandler handles POST /api/v1/analyze.
func (s *Server) analyzeHandler(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.router.AnalyzeQuery(c.Request.Context(), req.Query))
}

// executeToolHandler handles POST /api/v1/servers/:id/tools/:tool/call.
func (s *Server) executeToolHandler(c *gin.Context) {
	var req ExecuteToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	tool := c.Param("tool")
	result, err := s.router.ExecuteTool(c.Request.Context(), router.ExecRequest{
		ServerID: id,
		Tool:     tool,
		Args:     req.Args,
		NoCache:  req.NoCache,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExecuteToolResponse{
		ServerID: id,
		Tool:     tool,
		Result:   result,
		Text:     result.Text(),
	})
}
