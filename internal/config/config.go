// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Стратегии выдачи сессионных токенов.
const (
	StrategyJWT    = "jwt"    // подписанный самодостаточный токен
	StrategyOpaque = "opaque" // случайный токен + серверное хранилище
)

// Бэкенды токен-хранилища для opaque-стратегии.
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	Session                 `yaml:"session"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	Addr        string        `yaml:"addr" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
}

// Session структура для настройки выдачи и проверки токенов.
//
// TokenTTL по умолчанию зависит от стратегии: 30 минут для jwt,
// 60 минут для opaque (см. DefaultTokenTTL). Секретный ключ подписи
// читается только из окружения и не попадает в yaml.
type Session struct {
	Strategy        string        `yaml:"strategy" env-default:"jwt"`
	Store           string        `yaml:"store" env-default:"memory"`
	TokenTTL        time.Duration `yaml:"token_ttl"`
	BcryptCost      int           `yaml:"bcrypt_cost" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"5m"`
	JWTSecretKey    string        `yaml:"-" env:"JWT_SECRET_KEY"`
}

// DefaultTokenTTL возвращает срок жизни токена с учётом стратегии,
// если явное значение в конфиге не задано.
func (s Session) DefaultTokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	if s.Strategy == StrategyOpaque {
		return 60 * time.Minute
	}
	return 30 * time.Minute
}

// MustLoad функция для загрузки конфига, путь берется из переменной окружения CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if cfg.Session.Strategy == StrategyJWT && cfg.Session.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}
	return &cfg
}
