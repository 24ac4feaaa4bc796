package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockLogger provides a simple logger implementation for testing
type mockLogger struct {
	infoMessages  []string
	errorMessages []string
}

func newMockLogger() *mockLogger {
	return &mockLogger{}
}

func (m *mockLogger) LogInfo(msg string, fields map[string]interface{}) {
	m.infoMessages = append(m.infoMessages, msg)
}

func (m *mockLogger) LogError(err error, msg string) error {
	m.errorMessages = append(m.errorMessages, msg)
	return err
}

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
database:
  host: localhost
  user: tty
  dbname: tty_db
`)

	configService := NewConfigService(newMockLogger())
	cfg, err := configService.Load(dir)
	assert.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10000, cfg.Server.Port)
	assert.Equal(t, int64(100*1024*1024), cfg.Video.MaxSize)
	assert.Equal(t, "disable", cfg.Database.Sslmode)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, filepath.IsAbs(cfg.Storage.UploadDir))
	assert.Equal(t, filepath.Join(dir, "uploads"), cfg.Storage.UploadDir)
}

func TestLoadConfig_MissingDatabase(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
server:
  port: 10000
`)

	configService := NewConfigService(newMockLogger())
	_, err := configService.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database host is required")
}

func TestLoadConfig_RemoteStorageDetection(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
database:
  host: localhost
  user: tty
  dbname: tty_db
storage:
  s3:
    region: us-east-1
    bucket: tty-videos
    accessKeyId: test-key
    secretAccessKey: test-secret
`)

	configService := NewConfigService(newMockLogger())
	cfg, err := configService.Load(dir)
	assert.NoError(t, err)
	assert.True(t, cfg.RemoteStorageConfigured())
}

func TestLoadConfig_RemoteStorageAbsent(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
database:
  host: localhost
  user: tty
  dbname: tty_db
`)

	configService := NewConfigService(newMockLogger())
	cfg, err := configService.Load(dir)
	assert.NoError(t, err)
	assert.False(t, cfg.RemoteStorageConfigured())
	assert.False(t, cfg.RelayEnabled())
}

func TestLoadConfig_RelayEnabledInProduction(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
environment: production
database:
  host: localhost
  user: tty
  dbname: tty_db
`)

	configService := NewConfigService(newMockLogger())
	cfg, err := configService.Load(dir)
	assert.NoError(t, err)
	assert.True(t, cfg.RelayEnabled())
}

func TestLoadConfig_EnvFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
database:
  host: localhost
  user: tty
  dbname: tty_db
storage:
  s3:
    region: us-east-1
    bucket: tty-videos
`)
	writeConfigFile(t, dir, ".env", "S3_ACCESS_KEY_ID=env-key\nS3_SECRET_ACCESS_KEY=env-secret\n")

	configService := NewConfigService(newMockLogger())
	cfg, err := configService.Load(dir)
	assert.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Storage.S3.AccessKeyID)
	assert.Equal(t, "env-secret", cfg.Storage.S3.SecretAccessKey)
	assert.True(t, cfg.RemoteStorageConfigured())
}

func TestLoadConfig_TestEnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config_test.yaml", `
environment: test
database:
  host: localhost
  user: tty
  dbname: tty_test
`)

	os.Setenv("ENV", "test")
	defer os.Unsetenv("ENV")

	configService := NewConfigService(newMockLogger())
	cfg, err := configService.Load(dir)
	assert.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "tty_test", cfg.Database.Dbname)
}
