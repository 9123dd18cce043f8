package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `validate:"required"`
	Database DatabaseConfig `validate:"required"`
	Redis    RedisConfig
	Log      LogConfig
	Auth     AuthConfig `validate:"required"`
	Mail     MailConfig
	Files    FilesConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int    `validate:"gt=0,lt=65536"`
	Env         string `validate:"oneof=development staging production test"`
	CORSOrigins string `validate:"required"`
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            int    `validate:"gt=0,lt=65536"`
	User            string `validate:"required"`
	Password        string
	DBName          string `validate:"required"`
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// AuthConfig - параметры выдачи и проверки JWT
type AuthConfig struct {
	Issuer        string        `validate:"required"`
	Audience      string        `validate:"required"`
	SecretForKey  string        `validate:"required,min=32"`
	TokenLifetime time.Duration `validate:"gt=0"`
	RequiredCity  string        `validate:"required"`
}

type MailConfig struct {
	Driver      string `validate:"oneof=local stream"`
	ToAddress   string `validate:"required,email"`
	FromAddress string `validate:"required,email"`
}

type FilesConfig struct {
	Dir            string `validate:"required"`
	MaxUploadBytes int64  `validate:"gt=0"`
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
}

// Load reads the optional .env file in the working directory and the environment.
// Environment variables win over the file; missing keys take the defaults below.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Auth: AuthConfig{
			Issuer:        v.GetString("AUTH_ISSUER"),
			Audience:      v.GetString("AUTH_AUDIENCE"),
			SecretForKey:  v.GetString("AUTH_SECRET_FOR_KEY"),
			TokenLifetime: time.Duration(v.GetInt("AUTH_TOKEN_LIFETIME")) * time.Second,
			RequiredCity:  v.GetString("AUTH_REQUIRED_CITY"),
		},
		Mail: MailConfig{
			Driver:      v.GetString("MAIL_DRIVER"),
			ToAddress:   v.GetString("MAIL_TO_ADDRESS"),
			FromAddress: v.GetString("MAIL_FROM_ADDRESS"),
		},
		Files: FilesConfig{
			Dir:            v.GetString("FILES_DIR"),
			MaxUploadBytes: v.GetInt64("FILES_MAX_UPLOAD_BYTES"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "cityinfo")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("AUTH_ISSUER", "https://localhost:8080")
	v.SetDefault("AUTH_AUDIENCE", "cityinfoapi")
	v.SetDefault("AUTH_TOKEN_LIFETIME", 3600)
	v.SetDefault("AUTH_REQUIRED_CITY", "Antwerp")

	v.SetDefault("MAIL_DRIVER", "local")
	v.SetDefault("MAIL_TO_ADDRESS", "admin@mycompany.com")
	v.SetDefault("MAIL_FROM_ADDRESS", "noreply@mycompany.com")

	v.SetDefault("FILES_DIR", "./storage/files")
	v.SetDefault("FILES_MAX_UPLOAD_BYTES", 20*1024*1024)

	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("WORKER_CONSUMER_GROUP", "mail-workers")
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
