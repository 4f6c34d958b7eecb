package telemetry

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

// TraceHeader echoes the trace id so a client can quote it in a bug report.
const TraceHeader = "X-Trace-ID"

// unmatchedRoute labels requests gin could not route, keeping raw paths out
// of metric attributes.
const unmatchedRoute = "unmatched"

type httpInstruments struct {
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	duration, err := meter.Float64Histogram("motivation.http.server.duration",
		metric.WithDescription("Time to serve an API request"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter("motivation.http.server.in_flight",
		metric.WithDescription("Requests currently being served"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, inFlight: inFlight}, nil
}

// Middleware records request duration per route and status class, and
// exposes the active trace id in TraceHeader and on the request logger.
// TracingMiddleware must run before it so a span exists.
func Middleware() gin.HandlerFunc {
	inst, err := newHTTPInstruments(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		propagateTraceID(c)

		if inst == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		start := time.Now()
		route := routeOf(c)

		inst.inFlight.Add(ctx, 1, metric.WithAttributes(attribute.String("http.route", route)))

		c.Next()

		inst.inFlight.Add(ctx, -1, metric.WithAttributes(attribute.String("http.route", route)))
		inst.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.status_class", statusClass(c.Writer.Status())),
		))
	}
}

func propagateTraceID(c *gin.Context) {
	traceID := TraceID(c.Request.Context())
	if traceID == "" {
		return
	}

	c.Header(TraceHeader, traceID)
	c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}

	return unmatchedRoute
}

// statusClass turns 404 into "4xx".
func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

// TracingMiddleware returns the otelgin tracing middleware.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
