package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	TokenTTLMin    int
	CacheTTLSec    int
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment (SHOPLEDGER_ prefix) with
// an optional shopledger.yaml in the working directory.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("shopledger")
	v.AutomaticEnv()

	v.SetConfigName("shopledger")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("port", "8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("token_ttl_min", 60)
	v.SetDefault("cache_ttl_sec", 30)
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Port:           v.GetString("port"),
		DatabaseURL:    v.GetString("database_url"),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		RedisDB:        v.GetInt("redis_db"),
		JWTSecret:      v.GetString("jwt_secret"),
		TokenTTLMin:    v.GetInt("token_ttl_min"),
		CacheTTLSec:    v.GetInt("cache_ttl_sec"),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "change-me-in-prod"
	}
	return cfg, nil
}

func (c Config) Address() string {
	return ":" + c.Port
}
