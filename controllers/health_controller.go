package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root greets callers of the bare path.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Admission Announcements API",
	})
}

// Health provides an unauthenticated liveness endpoint for container orchestrators.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
