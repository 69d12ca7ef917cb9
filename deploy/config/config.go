package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPServer HTTPServer
	Rates      Rates
	History    History
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"2m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Rates struct {
	URL     string        `env:"RATES_URL" env-default:"https://api.exchangerate-api.com/v4/latest"`
	Base    string        `env:"RATES_BASE" env-default:"USD"`
	TTL     time.Duration `env:"RATES_TTL" env-default:"10m"`
	Timeout time.Duration `env:"RATES_TIMEOUT" env-default:"8s"`
}

type History struct {
	URL         string        `env:"HISTORY_URL" env-default:"https://api.frankfurter.app"`
	Timeout     time.Duration `env:"HISTORY_TIMEOUT" env-default:"8s"`
	DefaultDays int           `env:"HISTORY_DEFAULT_DAYS" env-default:"7"`
}

func NewConfig() *Config {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatal("Error reading env")
	}

	return cfg
}
