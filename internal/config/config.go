package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "data/config.yaml"

const (
	envFile        = ".env"
	tokenEnvKey    = "TELEGRAM_TOKEN"
	apiBaseEnvKey  = "API_BASE_URL"
	defaultTimeout = 5
)

type config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	API      APIConfig      `yaml:"api"`
	App      AppConfig      `yaml:"app"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML file at path. Values from the environment (and an
// optional .env file next to the binary) take precedence for secrets.
func New(path string) (*Service, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}
	s.applyEnv()

	if err = s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) applyEnv() {
	if token := os.Getenv(tokenEnvKey); token != "" {
		s.config.Telegram.ApiToken = token
	}
	if base := os.Getenv(apiBaseEnvKey); base != "" {
		s.config.API.URL = base
	}
	if s.config.App.TimeoutSeconds == 0 {
		s.config.App.TimeoutSeconds = defaultTimeout
	}
}

func (s *Service) validate() error {
	if s.config.API.URL == "" {
		return errors.New("api.base-url is required")
	}
	if _, err := s.config.App.location(); err != nil {
		return errors.Wrap(err, "app.timezone")
	}
	return nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) API() *APIConfig {
	return &s.config.API
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
