package router

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/codewith-lab/admission-api/controllers"
	"github.com/codewith-lab/admission-api/metrics"
)

func InitRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())

	// Anything a handler did not anticipate becomes a generic 500 with no
	// internal detail leaked to the client.
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	allowedOrigins := []string{"*"}
	if raw := os.Getenv("FRONTEND_ORIGINS"); raw != "" {
		split := strings.Split(raw, ",")
		allowedOrigins = allowedOrigins[:0]
		for _, v := range split {
			trimmed := strings.TrimSpace(v)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
		if len(allowedOrigins) == 0 {
			allowedOrigins = []string{"*"}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.Use(func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	})

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/universities", controllers.GetUniversities)
	r.GET("/announcements", controllers.GetAllAnnouncements)
	r.GET("/announcements/:university", controllers.GetUniversityAnnouncements)

	return r
}
