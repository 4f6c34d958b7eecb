package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

// Logging logs request completion with the context logger, which carries
// the request, correlation and trace IDs. Probe endpoints under /-/ and any
// path in skipPaths are not logged.
func Logging(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok || strings.HasPrefix(path, "/-/") {
			c.Next()
			return
		}

		start := time.Now()

		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		// Read the logger after c.Next so attributes added downstream
		// (the profile) are included.
		ctx := c.Request.Context()
		logging.FromContext(ctx).Log(ctx, level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// Logger seeds the request context with logger. Install it before the ID
// middleware so the IDs they add are attached to this logger.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}
