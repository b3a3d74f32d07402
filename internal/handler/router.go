package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"sarmiento-f5/internal/handler/api"
	"sarmiento-f5/internal/handler/middleware"
	"sarmiento-f5/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter

	Slots        *api.SlotHandler
	Reservations *api.ReservationHandler
	Payments     *api.PaymentHandler
	Waitlist     *api.WaitlistHandler
	Rivals       *api.RivalsHandler
	Contact      *api.ContactHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// form submissions are throttled per client IP
	var limited []gin.HandlerFunc
	if p.Config.RateLimit.Enabled {
		limited = []gin.HandlerFunc{p.RateLimiter.Limit()}
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/slots"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Slots.List},
			{Method: http.MethodGet, Path: "/today", Handler: p.Slots.Today},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "/quote", Handler: p.Reservations.Quote},
			{Method: http.MethodPost, Path: "/checkout", Handler: p.Reservations.Checkout, Mw: limited},
			{Method: http.MethodGet, Path: "/confirmation", Handler: p.Reservations.Confirmation},
			{Method: http.MethodGet, Path: "/confirmation/receipt", Handler: p.Reservations.Receipt},
		})

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "/confirm", Handler: p.Payments.Confirm, Mw: limited},
			{Method: http.MethodPost, Path: "/cancel", Handler: p.Payments.Cancel},
		})

		addRoutes(apiGroup.Group("/waitlist"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Waitlist.Join, Mw: limited},
		})

		addRoutes(apiGroup.Group("/rivals"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Rivals.Search},
			{Method: http.MethodGet, Path: "/options", Handler: p.Rivals.Options},
			{Method: http.MethodPost, Path: "/preview", Handler: p.Rivals.Preview},
			{Method: http.MethodPost, Path: "", Handler: p.Rivals.Publish, Mw: limited},
		})

		addRoutes(apiGroup.Group("/contact"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Contact.Links},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: p.Reservations.History},
				{Method: http.MethodGet, Path: "/waitlist", Handler: p.Waitlist.List},
				{Method: http.MethodDelete, Path: "/waitlist/:index", Handler: p.Waitlist.Delete},
				{Method: http.MethodPost, Path: "/waitlist/:index/contacted", Handler: p.Waitlist.MarkContacted},
				{Method: http.MethodGet, Path: "/waitlist/:index/call", Handler: p.Waitlist.Call},
			})
		}
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc(nil), r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
