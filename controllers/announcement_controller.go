package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewith-lab/admission-api/scrapers"
	"github.com/codewith-lab/admission-api/utils"
)

type paginationQuery struct {
	Limit  int `form:"limit,default=100" binding:"min=1"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// GetAllAnnouncements scrapes every university live and returns one
// paginated list in fixed source order.
func GetAllAnnouncements(c *gin.Context) {
	var q paginationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	all := scrapers.ScrapeAll(c.Request.Context())
	if len(all) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No announcements found"})
		return
	}

	page, total := utils.Paginate(all, q.Offset, q.Limit)
	c.JSON(http.StatusOK, gin.H{
		"data":   page,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}

// GetUniversityAnnouncements scrapes one university live. An unknown key and
// an empty result both come back as 404; a source that is down is not
// distinguishable from one with nothing to report.
func GetUniversityAnnouncements(c *gin.Context) {
	var q paginationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := c.Param("university")
	src, ok := scrapers.Lookup(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("University '%s' not found", key)})
		return
	}

	items := src.Scrape(c.Request.Context(), src.URL)
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No announcements found for " + src.Name})
		return
	}

	page, total := utils.Paginate(items, q.Offset, q.Limit)
	c.JSON(http.StatusOK, gin.H{
		"data":   page,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}
