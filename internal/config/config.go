// Package config предоставляет структуры и функцию для загрузки конфига.
// Конфиг читается из YAML-файла, путь к которому задаёт CONFIG_PATH;
// если переменная не задана, конфиг собирается из переменных окружения.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Mongo      `yaml:"mongo"`
	JWTToken   `yaml:"jwttoken"`
	Stripe     `yaml:"stripe"`
	CORS       `yaml:"cors"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Port        int           `yaml:"port" env:"PORT" env-default:"5000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Mongo структура для настройки подключения к хранилищу документов.
// URI, если задан, имеет приоритет над парой логин/пароль.
type Mongo struct {
	URI      string `yaml:"uri" env:"MONGODB_URI"`
	Username string `yaml:"username" env:"DB_USERNAME"`
	Password string `yaml:"password" env:"DB_PASS"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost:27017"`
	Database string `yaml:"database" env:"DB_NAME" env-default:"GYM"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"1h"`
}

// Stripe структура для настройки платёжного провайдера.
type Stripe struct {
	SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET"`
}

// CORS структура для настройки разрешённых источников кросс-доменных запросов.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ORIGINS" env-default:"*"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Port: %d\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Mongo:\n"+
			"  Host: %s\n"+
			"  Database: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n",
		c.Env,
		c.Port,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Host,
		c.Database,
		c.TokenTTL,
	)
}
