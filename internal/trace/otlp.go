package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanTabActivate is the name of the span recorded for each active tab change.
const SpanTabActivate = "tabdeck.tab.activate"

// OTLPExporter exports tab activation spans to an OTLP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	session  string
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// Returns nil if endpoint not configured (disabled)
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "tabdeck"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

func newExporter(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("tabdeck/ui"),
		session:  NewSessionID(),
	}
}

// ObserveTabChange records one span for a move of the active tab.
// Its signature matches ui.ChangeFunc so it can be passed to Tabs.Subscribe.
func (e *OTLPExporter) ObserveTabChange(from, to string) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(context.Background(), SpanTabActivate,
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String("tabdeck.tab.from", from),
		attribute.String("tabdeck.tab.to", to),
		attribute.String("tabdeck.session", e.session),
	)
	span.End()
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
