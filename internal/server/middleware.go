package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/comalice/rivercrossing/internal/logging"
)

const requestIDKey = "request_id"

// getOrCreateRequestID returns the caller's X-Request-ID or a fresh one,
// echoing it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	c.Set(requestIDKey, requestID)
	return requestID
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		getOrCreateRequestID(c)
		c.Next()
	}
}

// rateLimitMiddleware enforces a per-client token bucket keyed by client IP.
func (s *Server) rateLimitMiddleware(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !limiter.Allow(c.Request.Context(), key) {
			rateLimited.Inc()
			logging.NewEvent(s.logger.Warn()).
				Add(logging.Component("server")).
				Add(logging.RequestID(getOrCreateRequestID(c))).
				Add(logging.Str("client", key)).
				Msg("rate limit exceeded")
			s.abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
			return
		}
		c.Next()
	}
}

// accessLogMiddleware records metrics and a log line per request.
func (s *Server) accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		elapsed := time.Since(began)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		requestLatency.WithLabelValues(route).Observe(elapsed.Seconds())

		logging.NewEvent(s.logger.Info()).
			Add(logging.Component("server")).
			Add(logging.RequestID(getOrCreateRequestID(c))).
			Add(logging.Str("method", c.Request.Method)).
			Add(logging.Str("route", route)).
			Add(logging.Int("status", status)).
			Add(logging.Duration(elapsed)).
			Msg("request")
	}
}
