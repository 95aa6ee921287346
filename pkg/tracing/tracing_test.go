package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mbo_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestInitTracer(t *testing.T) {
	tp, err := InitTracer(config.TracingConfig{
		CollectorEndpoint: "http://127.0.0.1:14268/api/traces",
		SampleRatio:       0.5,
	})
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if tp == nil {
		t.Fatal("tracer provider is nil")
	}
	if otel.GetTracerProvider() != tp {
		t.Error("global tracer provider not set")
	}
}

func TestGinMiddlewareStartsSpan(t *testing.T) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())
	otel.SetTextMapPropagator(propagation.TraceContext{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())

	var spanCtx trace.SpanContext
	router.GET("/api/goals", func(c *gin.Context) {
		spanCtx = trace.SpanContextFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/goals", nil))

	if !spanCtx.IsValid() {
		t.Error("handler context carries no span")
	}
}

func TestGinMiddlewarePropagatesParentTrace(t *testing.T) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())
	otel.SetTextMapPropagator(propagation.TraceContext{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())

	var spanCtx trace.SpanContext
	router.GET("/api/goals", func(c *gin.Context) {
		spanCtx = trace.SpanContextFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := spanCtx.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the inbound parent's", got)
	}
}
