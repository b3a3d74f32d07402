package middleware

import (
	"log/slog"
	"net/http"

	"sarmiento-f5/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedAlways are response headers the booking client reads: the receipt
// filename, the rate limit backoff and the request id shown in error toasts.
var exposedAlways = []string{"Content-Disposition", "Retry-After", "X-Request-ID"}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, exposedAlways),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

// mergeHeaders appends extra to base, skipping names already present in
// either canonical or raw form.
func mergeHeaders(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, h := range append(append([]string(nil), base...), extra...) {
		key := http.CanonicalHeaderKey(h)
		if h == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}
