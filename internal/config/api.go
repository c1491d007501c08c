package config

type APIConfig struct {
	URL string `yaml:"base-url"`
}

func (a *APIConfig) BaseURL() string {
	return a.URL
}
