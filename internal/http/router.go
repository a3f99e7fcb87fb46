package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tarif/internal/config"
	h "tarif/internal/http/handlers"
	"tarif/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Quotes
		quotes := api.Group("/quotes")
		quotes.POST("", h.CreateQuote)
		quotes.GET("/pdf", h.GetQuotePDF)

		// Tariffs
		tariffs := api.Group("/tariffs")
		tariffs.GET("", h.GetTariffs)
		tariffs.GET("/raw", middleware.RequireAuth(), middleware.RequireRoles("admin", "owner"), h.GetTariffsRaw)
	}

	return r
}
