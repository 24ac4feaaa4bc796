package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger Logger
}

// NewConfigService creates a new configuration service
func NewConfigService(logger Logger) *ConfigService {
	return &ConfigService{
		logger: logger,
	}
}

// Load loads the configuration from the specified path
func (s *ConfigService) Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	// Use test configuration file if ENV is set to test
	if os.Getenv("ENV") == "test" {
		v.SetConfigName("config_test")
	} else {
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	s.setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Secrets live in an optional .env file next to the config
	s.mergeEnvFile(v, path)
	s.bindEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := s.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	if err := s.resolveStoragePaths(&config, path); err != nil {
		return nil, fmt.Errorf("failed to resolve storage paths: %v", err)
	}

	s.logger.LogInfo("Configuration loaded successfully", map[string]interface{}{
		"environment":    config.Environment,
		"remote_storage": config.RemoteStorageConfigured(),
	})
	return &config, nil
}

// setDefaults sets default values for configuration
func (s *ConfigService) setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("server.port", 10000)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.pool.maxOpen", 25)
	v.SetDefault("database.pool.maxIdle", 5)
	v.SetDefault("storage.uploadDir", "uploads")
	v.SetDefault("video.maxSize", 100*1024*1024) // 100 MiB
	v.SetDefault("logging.level", "info")
}

// mergeEnvFile merges values from an optional .env file. Missing file is not an error.
func (s *ConfigService) mergeEnvFile(v *viper.Viper, path string) {
	ev := viper.New()
	ev.SetConfigFile(filepath.Join(path, ".env"))
	ev.SetConfigType("env")
	if err := ev.ReadInConfig(); err != nil {
		return
	}

	mappings := map[string]string{
		"S3_ENDPOINT":          "storage.s3.endpoint",
		"S3_REGION":            "storage.s3.region",
		"S3_BUCKET_NAME":       "storage.s3.bucket",
		"S3_ACCESS_KEY_ID":     "storage.s3.accessKeyId",
		"S3_SECRET_ACCESS_KEY": "storage.s3.secretAccessKey",
		"DATABASE_PASSWORD":    "database.password",
	}
	for envKey, configKey := range mappings {
		if value := ev.GetString(envKey); value != "" {
			v.Set(configKey, value)
		}
	}
}

// bindEnvOverrides binds recognized environment variables over file values
func (s *ConfigService) bindEnvOverrides(v *viper.Viper) {
	v.BindEnv("environment", "APP_ENV")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")
	v.BindEnv("storage.s3.region", "S3_REGION")
	v.BindEnv("storage.s3.bucket", "S3_BUCKET_NAME")
	v.BindEnv("storage.s3.accessKeyId", "S3_ACCESS_KEY_ID")
	v.BindEnv("storage.s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
}

// validate performs validation on the configuration. Database settings are
// required: without them metadata persistence is impossible and startup fails.
func (s *ConfigService) validate(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("invalid server port")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if config.Database.Dbname == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.Port <= 0 {
		return fmt.Errorf("invalid database port")
	}

	if config.Video.MaxSize <= 0 {
		return fmt.Errorf("invalid video max size")
	}

	return nil
}

// resolveStoragePaths converts the upload directory to an absolute path
func (s *ConfigService) resolveStoragePaths(config *Config, basePath string) error {
	uploadDir := config.Storage.UploadDir
	if !filepath.IsAbs(uploadDir) {
		absPath, err := filepath.Abs(filepath.Join(basePath, uploadDir))
		if err != nil {
			return fmt.Errorf("failed to resolve upload directory path: %v", err)
		}
		config.Storage.UploadDir = absPath
	}
	return nil
}
