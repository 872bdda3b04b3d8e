package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DeletePolicy string

const (
	DeletePolicyRestrict DeletePolicy = "restrict" // Refuse to delete authors that still own books (default)
	DeletePolicyCascade  DeletePolicy = "cascade"  // Delete the author's books together with the author
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		Library
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver string // sqlite, postgres or mysql
		DSN    string // File path for sqlite, connection string otherwise
		SQLLog bool   // Log every statement through the gorm logger
	}
	Log struct {
		Level  string
		Format string // console or json
	}
	Library struct {
		CaseSensitiveSearch bool
		AuthorDeletePolicy  DeletePolicy
	}
)

// ShutdownTimeout converts the configured seconds into a duration.
func (g Global) ShutdownTimeout() time.Duration {
	return time.Duration(g.ShutdownTimeoutInSeconds) * time.Second
}

// loadDotEnv loads .env files into the process environment. godotenv never
// overrides a variable that is already set, so the real environment wins
// over .env.local, which wins over .env.
func loadDotEnv() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

func NewConfig() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_driver", DefaultDatabaseDriver)
	v.SetDefault("database_dsn", DefaultDatabaseDSN)
	v.SetDefault("sql_log", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("search_case_sensitive", false)
	v.SetDefault("author_delete_policy", string(DeletePolicyRestrict))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver: v.GetString("DATABASE_DRIVER"),
			DSN:    v.GetString("DATABASE_DSN"),
			SQLLog: v.GetBool("SQL_LOG"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Library: Library{
			CaseSensitiveSearch: v.GetBool("SEARCH_CASE_SENSITIVE"),
			AuthorDeletePolicy:  DeletePolicy(v.GetString("AUTHOR_DELETE_POLICY")),
		},
	}
}
