package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig
	Cache       CacheConfig
	Maintenance MaintenanceConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	// Для 'single', если не пуст, используется первый адрес из списка.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single' (для обратной совместимости).
	// Используется, если Mode="single" и Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - бесконечно). По умолчанию 0 (без ретраев).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (в миллисекундах). По умолчанию 8ms.
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (в миллисекундах). По умолчанию 512ms.
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// AuthConfig содержит настройки аутентификации игровых серверов
type AuthConfig struct {
	// GameTokenSecret: Секрет для подписи игровых JWT токенов (HS256)
	GameTokenSecret string `mapstructure:"game_token_secret"`

	// TokenExpiryHrs: Время жизни игрового токена в часах. По умолчанию 24.
	TokenExpiryHrs int `mapstructure:"token_expiry_hrs"`
}

// RateLimitConfig содержит настройки ограничения частоты запросов
type RateLimitConfig struct {
	// MaxRequests: Максимум запросов на игровой credential за окно. По умолчанию 120.
	MaxRequests int `mapstructure:"max_requests"`

	// WindowSec: Размер окна в секундах. По умолчанию 60.
	WindowSec int `mapstructure:"window_sec"`
}

// CacheConfig содержит настройки кеширования
type CacheConfig struct {
	// AvailabilityTTLSec: Время жизни кеша доступной рекламы в секундах. По умолчанию 30.
	AvailabilityTTLSec int `mapstructure:"availability_ttl_sec"`
}

// MaintenanceConfig содержит настройки обслуживающих задач
type MaintenanceConfig struct {
	// BatchSize: Размер батча при обходе таблиц. По умолчанию 500.
	BatchSize int `mapstructure:"batch_size"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Устанавливаем значения по умолчанию
	vip.SetDefault("auth.token_expiry_hrs", 24)
	vip.SetDefault("ratelimit.max_requests", 120)
	vip.SetDefault("ratelimit.window_sec", 60)
	vip.SetDefault("cache.availability_ttl_sec", 30)
	vip.SetDefault("maintenance.batch_size", 500)

	// 2. Привязываем переменные окружения ЯВНО
	// Привязка для секции Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	// Привязка для секции Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS") // Для массива строк
	vip.BindEnv("redis.addr", "REDIS_ADDR")   // Для одиночной строки
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для секции Auth
	vip.BindEnv("auth.game_token_secret", "GAME_TOKEN_SECRET")
	vip.BindEnv("auth.token_expiry_hrs", "AUTH_TOKEN_EXPIRY_HRS")

	// Привязка для секции RateLimit
	vip.BindEnv("ratelimit.max_requests", "RATELIMIT_MAX_REQUESTS")
	vip.BindEnv("ratelimit.window_sec", "RATELIMIT_WINDOW_SEC")

	// Привязка для секции Cache
	vip.BindEnv("cache.availability_ttl_sec", "CACHE_AVAILABILITY_TTL_SEC")

	// Привязка для секции Maintenance
	vip.BindEnv("maintenance.batch_size", "MAINTENANCE_BATCH_SIZE")

	// Привязка для Server
	vip.BindEnv("server.port", "SERVER_PORT")

	// 3. Устанавливаем путь к файлу конфигурации
	if configPath != "" {
		vip.SetConfigFile(configPath)
		// 4. Пытаемся прочитать файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 5. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Логирование конфигурации (только в debug режиме)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database User: %s", cfg.Database.User)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Database SSLMode: %s", cfg.Database.SSLMode)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Redis Mode: %s", cfg.Redis.Mode)
		log.Printf("Game Token Secret Set: %t", cfg.Auth.GameTokenSecret != "")
		log.Printf("Token Expiry Hours: %d", cfg.Auth.TokenExpiryHrs)
		log.Printf("Rate Limit: %d req / %d sec", cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSec)
		log.Printf("Availability Cache TTL: %d sec", cfg.Cache.AvailabilityTTLSec)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	// 7. Проверка обязательных параметров
	if cfg.Auth.GameTokenSecret == "" {
		return nil, fmt.Errorf("game token secret is required in config (check GAME_TOKEN_SECRET env var)")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if os.Getenv("GIN_MODE") == "release" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("database password is required in production mode (check DATABASE_PASSWORD env var)")
	}

	return &cfg, nil
}
