package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	exactParam := c.Query("exact")
	exact := exactParam == "1" || exactParam == "true"

	h.services.Logger.Infof("[SearchHandler] searching for %q (exact=%v)", query, exact)

	results, err := h.services.BGG.Search(query, exact)
	if err != nil {
		h.services.Logger.Errorf("[SearchHandler] search %q failed: %v", query, err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"exact":   exact,
		"count":   len(results),
		"results": results,
	})
}
