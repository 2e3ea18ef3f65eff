package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime parameter, read from environment variables.
type Config struct {
	ServerAddress  string        `envconfig:"SERVER_ADDRESS" default:":9090"`
	ContextTimeout time.Duration `envconfig:"CONTEXT_TIMEOUT" default:"30s"`

	DatabaseHost string `envconfig:"DATABASE_HOST" required:"true"`
	DatabasePort int    `envconfig:"DATABASE_PORT" default:"3306"`
	DatabaseUser string `envconfig:"DATABASE_USER" required:"true"`
	DatabasePass string `envconfig:"DATABASE_PASS" required:"true"`
	DatabaseName string `envconfig:"DATABASE_NAME" required:"true"`

	CacheHost string `envconfig:"CACHE_HOST" required:"true"`
	CachePort int    `envconfig:"CACHE_PORT" default:"6379"`
	CachePass string `envconfig:"CACHE_PASS"`
	CacheDB   int    `envconfig:"CACHE_DB" default:"0"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpire time.Duration `envconfig:"JWT_EXPIRE" default:"24h"`

	BloomFilterSize uint64 `envconfig:"BLOOM_FILTER_SIZE" default:"10000000"`
}

// DSN returns the MySQL data source name.
func (c *Config) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName, val.Encode())
}

// CacheAddr returns the redis host:port address.
func (c *Config) CacheAddr() string {
	return fmt.Sprintf("%s:%d", c.CacheHost, c.CachePort)
}

// Load reads the configuration from the environment, preloading .env when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
