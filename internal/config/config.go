package config

// Config holds runtime configuration for the CLI.
type Config struct {
	BaseURL     string
	HTTPTimeout Duration
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
	}
}
