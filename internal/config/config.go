package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Logging    LoggingConfig  `mapstructure:"logging"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DefaultsConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Logging:  LoggingConfig{Level: "warn", Format: "text"},
		Defaults: DefaultsConfig{CurrencySymbol: "$"},
	}
}
