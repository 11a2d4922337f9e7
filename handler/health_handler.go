package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers uptime probes.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
