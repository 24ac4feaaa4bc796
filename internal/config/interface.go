package config

// Logger defines the logging operations needed by the config service
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}

// Service defines the interface for configuration loading
type Service interface {
	Load(path string) (*Config, error)
}
