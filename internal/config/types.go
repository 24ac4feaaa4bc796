package config

// Config represents the application configuration
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Storage     StorageConfig `mapstructure:"storage"`
	Video       VideoConfig   `mapstructure:"video"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// StorageConfig represents storage configuration settings
type StorageConfig struct {
	UploadDir string   `mapstructure:"uploadDir"`
	S3        S3Config `mapstructure:"s3"`
}

// S3Config represents remote object storage configuration settings
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

// VideoConfig represents video upload settings
type VideoConfig struct {
	MaxSize int64 `mapstructure:"maxSize"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RemoteStorageConfigured reports whether remote relay credentials are present.
// Absence of credentials is an expected state that disables the relay entirely.
func (c *Config) RemoteStorageConfigured() bool {
	s3 := c.Storage.S3
	return s3.AccessKeyID != "" && s3.SecretAccessKey != "" && s3.Bucket != ""
}

// RelayEnabled reports whether this deployment mode attempts the remote relay.
func (c *Config) RelayEnabled() bool {
	return c.Environment == "production"
}
