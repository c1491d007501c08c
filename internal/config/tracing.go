package config

type TracingConfig struct {
	Service   string  `yaml:"service-name"`
	AgentHost string  `yaml:"agent-host-port"`
	Rate      float64 `yaml:"sampling-rate"`
}

func (t *TracingConfig) ServiceName() string {
	if t.Service == "" {
		return "finance-tracker-bot"
	}
	return t.Service
}

func (t *TracingConfig) AgentHostPort() string {
	return t.AgentHost
}

func (t *TracingConfig) SamplingRate() float64 {
	return t.Rate
}
