package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/jaeger-client-go"
)

func Test_samplerConfig(t *testing.T) {
	off := samplerConfig(0)
	assert.Equal(t, jaeger.SamplerTypeConst, off.Type)
	assert.Equal(t, 0.0, off.Param)

	all := samplerConfig(1)
	assert.Equal(t, jaeger.SamplerTypeConst, all.Type)
	assert.Equal(t, 1.0, all.Param)

	some := samplerConfig(0.25)
	assert.Equal(t, jaeger.SamplerTypeProbabilistic, some.Type)
	assert.Equal(t, 0.25, some.Param)
}
