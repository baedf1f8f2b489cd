package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path   string
		LogSQL bool
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", "./catalog.db")
	v.SetDefault("database_log_sql", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path:   v.GetString("DATABASE_PATH"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
