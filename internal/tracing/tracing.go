package tracing

import (
	"atelier/internal/config"
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Shutdown сбрасывает буфер спанов и останавливает провайдер.
type Shutdown func(ctx context.Context) error

func noop(context.Context) error { return nil }

// Init регистрирует глобальный провайдер трассировки. Без адреса Jaeger
// или при ошибке экспортера сервис работает без трассировки.
func Init(cfg config.TracingConfig) Shutdown {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if cfg.JaegerURL == "" {
		log.Println("JAEGER_URL не задан, трассировка выключена.")
		return noop
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerURL)))
	if err != nil {
		log.Printf("Ошибка создания Jaeger-экспортера, трассировка выключена: %v", err)
		return noop
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.ServiceName))),
		sdktrace.WithSampler(sampler(cfg.SampleRatio)),
	)
	otel.SetTracerProvider(tp)

	log.Printf("Трассировка %s включена, доля записываемых трейсов %.2f.", cfg.ServiceName, clamp(cfg.SampleRatio))
	return tp.Shutdown
}

// sampler уважает решение входящего контекста; корневые спаны сэмплируются по доле.
func sampler(ratio float64) sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clamp(ratio)))
}

func clamp(ratio float64) float64 {
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}
