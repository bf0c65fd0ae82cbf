package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewith-lab/admission-api/scrapers"
)

// GetUniversities lists the supported universities in aggregation order.
func GetUniversities(c *gin.Context) {
	srcs := scrapers.Sources()
	names := make([]string, 0, len(srcs))
	for _, s := range srcs {
		names = append(names, s.Name)
	}
	c.JSON(http.StatusOK, gin.H{"data": names})
}
