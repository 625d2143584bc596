package api

import (
	"net/http"

	"github.com/Nishant2356/Card-game/internal/version"

	"github.com/gin-gonic/gin"
)

// Version reports the build information stamped at compile time.
func (h *GameHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
