// backend-go/internal/config/config.go
package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/storage"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Cache     CacheConfig
	Assistant AssistantConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port            string
	Mode            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

type AppConfig struct {
	LogLevel string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

type AssistantConfig struct {
	ResponseDelayMS  int
	CatalogLocation  string
	MaxConversations int
}

// ResponseDelay is how long a chat reply stays pending.
func (c AssistantConfig) ResponseDelay() time.Duration {
	if c.ResponseDelayMS < 0 {
		return 0
	}
	return time.Duration(c.ResponseDelayMS) * time.Millisecond
}

// StorageConfig points at the S3-compatible bucket used for s3:// catalog locations.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

func (c StorageConfig) Sevalla() storage.SevallaConfig {
	return storage.SevallaConfig{
		Endpoint:  c.Endpoint,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Bucket:    c.Bucket,
		Region:    c.Region,
		UseSSL:    c.UseSSL,
	}
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		SetDefaults(viper.GetViper())

		// Read from environment variables
		viper.AutomaticEnv()

		instance = FromViper(viper.GetViper())
	})

	return instance
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_DASHBOARD_TTL_SECONDS", 60)
	v.SetDefault("ASSISTANT_RESPONSE_DELAY_MS", 1000)
	v.SetDefault("ASSISTANT_CATALOG_LOCATION", "./data/kpis.json")
	v.SetDefault("ASSISTANT_MAX_CONVERSATIONS", 1000)
	v.SetDefault("SEVALLA_ENDPOINT", "")
	v.SetDefault("SEVALLA_ACCESS_KEY", "")
	v.SetDefault("SEVALLA_SECRET_KEY", "")
	v.SetDefault("SEVALLA_BUCKET", "")
	v.SetDefault("SEVALLA_REGION", "us-east-1")
	v.SetDefault("SEVALLA_USE_SSL", true)
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Mode:            v.GetString("SERVER_MODE"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  v.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
		},
		App: AppConfig{
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Cache: CacheConfig{
			Enabled:             v.GetBool("CACHE_ENABLED"),
			RedisURL:            v.GetString("REDIS_URL"),
			RedisHost:           v.GetString("REDIS_HOST"),
			RedisPort:           v.GetString("REDIS_PORT"),
			RedisPassword:       v.GetString("REDIS_PASSWORD"),
			RedisDB:             v.GetInt("REDIS_DB"),
			DashboardTTLSeconds: v.GetInt("CACHE_DASHBOARD_TTL_SECONDS"),
		},
		Assistant: AssistantConfig{
			ResponseDelayMS:  v.GetInt("ASSISTANT_RESPONSE_DELAY_MS"),
			CatalogLocation:  v.GetString("ASSISTANT_CATALOG_LOCATION"),
			MaxConversations: v.GetInt("ASSISTANT_MAX_CONVERSATIONS"),
		},
		Storage: StorageConfig{
			Endpoint:  v.GetString("SEVALLA_ENDPOINT"),
			AccessKey: v.GetString("SEVALLA_ACCESS_KEY"),
			SecretKey: v.GetString("SEVALLA_SECRET_KEY"),
			Bucket:    v.GetString("SEVALLA_BUCKET"),
			Region:    v.GetString("SEVALLA_REGION"),
			UseSSL:    v.GetBool("SEVALLA_USE_SSL"),
		},
	}
}
