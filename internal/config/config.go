package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// defaultJWTSecret is the documented insecure fallback; deployments override
// it through JWT_SECRET.
const defaultJWTSecret = "secreto_super_seguro"

type Config struct {
	Server    ServerConfig
	JWT       JWTConfig
	Storage   StorageConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type StorageConfig struct {
	TurnosFile string `mapstructure:"turnos_file"`
	MedicoFile string `mapstructure:"medico_file"`
}

// SMTPConfig enables the booking confirmation mailer; it stays disabled while
// Host is empty.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("jwt.secret", defaultJWTSecret)
	viper.SetDefault("jwt.expiry_hours", 168)
	viper.SetDefault("storage.turnos_file", "data/turnos.json")
	viper.SetDefault("storage.medico_file", "data/medico.json")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("ratelimit.requests_per_second", 50)
	viper.SetDefault("ratelimit.burst", 100)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with environment variables if present
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port, _ = strconv.Atoi(port)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWT.Secret = secret
	}
	if path := os.Getenv("TURNOS_FILE"); path != "" {
		config.Storage.TurnosFile = path
	}
	if path := os.Getenv("MEDICO_FILE"); path != "" {
		config.Storage.MedicoFile = path
	}

	return &config, nil
}
