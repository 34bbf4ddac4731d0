package handlers

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(h.cfg.CORSOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api/v1")

	// Public routes
	api.POST("/signup", h.Signup)
	api.POST("/signin", h.Signin)
	api.GET("/recall/:shareLink", h.GetSharedCollection)

	// Protected routes
	authorized := api.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.POST("/content", h.CreateContent)
		authorized.GET("/content", h.ListContent)
		authorized.GET("/content/search", h.SearchContent)
		authorized.DELETE("/content", h.DeleteContent)

		authorized.POST("/recall/share", h.UpdateShare)
		authorized.POST("/recall/import", h.ImportCollection)

		// Kept out of /recall so the public :shareLink wildcard owns
		// that GET subtree.
		authorized.GET("/share/qr", h.ShareQRCode)
		authorized.GET("/share/stats", h.ShareStats)

		authorized.DELETE("/account", h.DeleteAccount)
	}

	return r
}
