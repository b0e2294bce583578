package config

import "time"

const (
	envBaseURL     = "NHL_API_BASE_URL"
	envHTTPTimeout = "NHL_HTTP_TIMEOUT"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"

	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)
