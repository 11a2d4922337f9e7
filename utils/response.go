package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error helpers matching the wire contract: every failure body is a bare
// {"msg": "..."} object. Success bodies vary per route, so handlers write
// those directly.

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"msg": message})
}

func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"msg": message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"msg": message})
}
