package httpx

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// NewClient builds the HTTP client used for all backend calls. The transport
// is wrapped with otelhttp so spans are emitted whenever a tracer provider is
// installed; without one the wrapper is a no-op.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	transport := otelhttp.NewTransport(
		http.DefaultTransport,
		otelhttp.WithSpanOptions(trace.WithSpanKind(trace.SpanKindClient)),
	)
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
