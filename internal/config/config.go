package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config 服务的全部配置，来自环境变量（可选 .env 文件）
type Config struct {
	ServerAddress  string        `env:"SERVER_ADDRESS" envDefault:":9090"`
	ContextTimeout time.Duration `env:"CONTEXT_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	Database Database
	Cache    Cache

	BloomFilterSize uint64 `env:"BLOOM_FILTER_SIZE" envDefault:"10000000" validate:"gt=0"`

	JWTSecret      string `env:"JWT_SECRET" validate:"required,min=16"`
	JWTExpireHours int    `env:"JWT_EXPIRE_HOURS" envDefault:"24" validate:"gt=0"`

	Discord Discord

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`

	MigrationsEnabled bool `env:"MIGRATIONS_ENABLED" envDefault:"true"`
}

type Database struct {
	Host     string `env:"DATABASE_HOST" envDefault:"localhost" validate:"required"`
	Port     int    `env:"DATABASE_PORT" envDefault:"3306" validate:"gt=0,lt=65536"`
	User     string `env:"DATABASE_USER" validate:"required"`
	Pass     string `env:"DATABASE_PASS"`
	Name     string `env:"DATABASE_NAME" validate:"required"`
	MaxRetry int    `env:"DATABASE_MAX_RETRY" envDefault:"10" validate:"gte=1"`
}

type Cache struct {
	Host string `env:"CACHE_HOST" envDefault:"localhost" validate:"required"`
	Port int    `env:"CACHE_PORT" envDefault:"6379" validate:"gt=0,lt=65536"`
	Pass string `env:"CACHE_PASS"`
	DB   int    `env:"CACHE_DB" envDefault:"0" validate:"gte=0"`
}

type Discord struct {
	ClientID     string `env:"DISCORD_CLIENT_ID" validate:"required"`
	ClientSecret string `env:"DISCORD_CLIENT_SECRET" validate:"required"`
	RedirectURL  string `env:"DISCORD_REDIRECT_URL" validate:"required,url"`
}

// DSN builds the MySQL data source name with parseTime and clientFoundRows on.
func (d Database) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	val.Add("charset", "utf8mb4")
	// RowsAffected 按匹配行数计算，内容未变的更新不会被当成不存在
	val.Add("clientFoundRows", "true")
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s", d.User, d.Pass, net.JoinHostPort(d.Host, strconv.Itoa(d.Port)), d.Name, val.Encode())
}

func (c Cache) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTExpireHours) * time.Hour
}

// Load reads the given .env files if they exist, then parses and checks
// the environment. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
