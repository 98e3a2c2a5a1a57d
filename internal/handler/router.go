package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"amhara-checkout/internal/handler/api"
	"amhara-checkout/internal/handler/middleware"
	"amhara-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, sessionHandler *api.PaymentSessionHandler, webhookHandler *api.WebhookHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, sessionHandler, webhookHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, sessionHandler *api.PaymentSessionHandler, webhookHandler *api.WebhookHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/payment-complete", webhookHandler.ReturnPage)
	webhooks := engine.Group("/webhooks")
	{
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/chapa", Handler: webhookHandler.Callback},
			{Method: http.MethodGet, Path: "/chapa", Handler: webhookHandler.Callback},
		})
	}

	apiGroup := engine.Group("/api")
	{
		session := apiGroup.Group("/payment-session")
		{
			addRoutes(session, []route{
				{Method: http.MethodPost, Path: "", Handler: sessionHandler.Open},
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.Get},
				{Method: http.MethodPut, Path: "/rail", Handler: sessionHandler.SelectRail},
				{Method: http.MethodPut, Path: "/credentials", Handler: sessionHandler.EnterCredentials},
				{Method: http.MethodPost, Path: "/submit", Handler: sessionHandler.Submit},
				{Method: http.MethodPost, Path: "/navigation", Handler: sessionHandler.Navigate},
				{Method: http.MethodPost, Path: "/cancel", Handler: sessionHandler.Cancel},
				{Method: http.MethodGet, Path: "/events", Handler: sessionHandler.Events},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/payment-mode", Handler: sessionHandler.GetMode},
			{Method: http.MethodPut, Path: "/payment-mode", Handler: sessionHandler.SetMode},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
