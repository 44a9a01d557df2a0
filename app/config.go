package app

import "github.com/caarlos0/env/v11"

// Config is loaded from the environment at startup.
type Config struct {
	Addr      string `env:"SHOP_ADDR" envDefault:":8080"`
	Database  string `env:"SHOP_DB" envDefault:"shop.db"`
	LogLevel  string `env:"SHOP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SHOP_LOG_FORMAT" envDefault:"text"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
