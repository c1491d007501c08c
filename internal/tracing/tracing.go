package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
	SamplingRate() float64
}

// Init installs a Jaeger tracer as the opentracing global tracer. Close the
// returned closer on exit to flush buffered spans.
func Init(cfg config) (io.Closer, error) {
	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler:     samplerConfig(cfg.SamplingRate()),
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	closer, err := jcfg.InitGlobalTracer(cfg.ServiceName())
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	logger.Info("tracer initialized",
		zap.String("service", cfg.ServiceName()),
		zap.Float64("samplingRate", cfg.SamplingRate()),
	)
	return closer, nil
}

// rate <= 0 samples nothing, rate >= 1 samples everything.
func samplerConfig(rate float64) *jaegercfg.SamplerConfig {
	switch {
	case rate <= 0:
		return &jaegercfg.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 0}
	case rate >= 1:
		return &jaegercfg.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 1}
	default:
		return &jaegercfg.SamplerConfig{Type: jaeger.SamplerTypeProbabilistic, Param: rate}
	}
}
