package middleware

import (
	"log/slog"

	"amhara-checkout/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// the embedded checkout surface posts navigations from the app origin
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowMethods", cfg.AllowMethods)
	return cors.New(corsCfg)
}
