package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"scheduler-callback-api/core/logger"
)

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

type CallbackConfig struct {
	// SecretToken is the shared secret the external scheduler must echo in
	// the X-Callback-Token header. Checked per request, not at boot; an
	// unconfigured deployment fails closed with a 500.
	SecretToken string
}

type ChatConfig struct {
	WebhookURL string
}

type JWTConfig struct {
	Secret string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Callback CallbackConfig
	Chat     ChatConfig
	JWT      JWTConfig
}

var instance *Config

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("Config:Load:NoDotEnv", "reason", err.Error())
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_PORT", "7070")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "scheduler")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "scheduler-payloads")

	instance = &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		S3: S3Config{
			Endpoint:  v.GetString("S3_ENDPOINT"),
			Region:    v.GetString("S3_REGION"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			Bucket:    v.GetString("S3_BUCKET"),
		},
		Callback: CallbackConfig{
			SecretToken: v.GetString("CALLBACK_SECRET_TOKEN"),
		},
		Chat: ChatConfig{
			WebhookURL: v.GetString("CHAT_WEBHOOK_URL"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
	}

	return instance, nil
}

func Get() *Config {
	return instance
}

func GetSafe() (*Config, bool) {
	return instance, instance != nil
}

// SetForTest replaces the process config; tests only.
func SetForTest(cfg *Config) {
	instance = cfg
}
