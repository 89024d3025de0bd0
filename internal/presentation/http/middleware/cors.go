package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sangkips/insights-api/internal/config"
)

var (
	defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	defaultCORSMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	defaultCORSHeaders = []string{"Accept", "Content-Type", "Origin", "X-Request-ID"}

	// Headers the insights page reads from responses
	exposedCORSHeaders = []string{"Content-Type", "Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
)

// CORSMiddleware lets browser clients on the configured origins call the API
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	return cors.New(newCORSConfig(cfg))
}

// newCORSConfig fills unset lists with defaults. A "*" origin allows every
// origin, which rules out credentialed requests.
func newCORSConfig(cfg *config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowMethods:     withDefault(cfg.AllowedMethods, defaultCORSMethods),
		AllowHeaders:     withDefault(cfg.AllowedHeaders, defaultCORSHeaders),
		ExposeHeaders:    exposedCORSHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := withDefault(cfg.AllowedOrigins, defaultCORSOrigins)
	if slices.Contains(origins, "*") {
		out.AllowAllOrigins = true
		out.AllowCredentials = false
	} else {
		out.AllowOrigins = origins
	}
	return out
}

func withDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
