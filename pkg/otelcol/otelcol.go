package otelcol

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/fx"

	"ediworks-controlplane/pkg/config"
)

var Module = fx.Module("otelcol",
	fx.Provide(ProvideTracerProvider),
	fx.Invoke(register),
)

// ProvideTracerProvider builds a tracer provider exporting over OTLP/HTTP
// when an endpoint is configured. Without one the provider has no exporter
// and spans stay local, which keeps trace ids in logs valid either way.
func ProvideTracerProvider(lc fx.Lifecycle, cfg *config.Config) (*trace.TracerProvider, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.AppName),
		semconv.ServiceVersion(cfg.AppVersion),
		semconv.DeploymentEnvironment(cfg.AppEnv),
	)

	opts := []trace.TracerProviderOption{
		trace.WithResource(res),
	}

	if cfg.Otel.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client := otlptracehttp.NewClient(
			otlptracehttp.WithInsecure(),
			otlptracehttp.WithCompression(otlptracehttp.GzipCompression),
			otlptracehttp.WithEndpoint(cfg.Otel.Addr),
		)

		exporter, err := otlptrace.New(ctx, client)
		if err != nil {
			return nil, err
		}

		opts = append(opts, trace.WithBatcher(exporter))
	}

	tp := trace.NewTracerProvider(opts...)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}

func register(tp *trace.TracerProvider) {
	otel.SetTracerProvider(tp)
}
