package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightdemo/cfg"
	"flightdemo/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultMetricInterval = 30 * time.Second

type ShutdownFunc func(context.Context) error

// Init points the global tracer and meter providers at the OTLP collector. Provider
// spans and the fallback counter of the search service flow through these globals.
// When observability is disabled the no-op globals stay and shutdown does nothing.
func Init(ctx context.Context, config *cfg.ObservabilityConfig, log logger.Logger) (ShutdownFunc, error) {
	if !config.Enabled {
		log.Info("OpenTelemetry disabled")
		return func(context.Context) error { return nil }, nil
	}

	conn, err := grpc.NewClient(
		config.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	res, err := newResource(ctx, config)
	if err != nil {
		conn.Close()
		return nil, err
	}

	tp, err := newTracerProvider(ctx, conn, res, config.SampleRatio)
	if err != nil {
		conn.Close()
		return nil, err
	}

	mp, err := newMeterProvider(ctx, conn, res, config.MetricInterval)
	if err != nil {
		errs := errors.Join(err, tp.Shutdown(ctx), conn.Close())
		return nil, errs
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("OpenTelemetry initialized",
		logger.Field{Key: "endpoint", Value: config.OTLPEndpoint},
		logger.Field{Key: "sample_ratio", Value: config.SampleRatio},
	)

	return func(ctx context.Context) error {
		return errors.Join(
			wrap("tracer shutdown", tp.Shutdown(ctx)),
			wrap("meter shutdown", mp.Shutdown(ctx)),
			wrap("collector connection close", conn.Close()),
		)
	}, nil
}

func newResource(ctx context.Context, config *cfg.ObservabilityConfig) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func newTracerProvider(ctx context.Context, conn *grpc.ClientConn, res *resource.Resource, ratio float64) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(ratio)),
	), nil
}

func newMeterProvider(ctx context.Context, conn *grpc.ClientConn, res *resource.Resource, interval time.Duration) (*metric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}
	if interval <= 0 {
		interval = defaultMetricInterval
	}
	return metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(interval))),
		metric.WithResource(res),
	), nil
}

// samplerFor keeps upstream sampling decisions and samples new traces at ratio.
func samplerFor(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

// TraceLoggerMiddleware logs each completed request with its trace and span ids.
func TraceLoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := []logger.Field{
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.FullPath()},
			{Key: "status", Value: c.Writer.Status()},
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			fields = append(fields,
				logger.Field{Key: "trace_id", Value: span.SpanContext().TraceID().String()},
				logger.Field{Key: "span_id", Value: span.SpanContext().SpanID().String()},
			)
		}

		log.Info("request completed", fields...)
	}
}
