package config

// Default connection settings
const (
	// DefaultDatabaseDriver is the dialect used when DATABASE_DRIVER is unset
	DefaultDatabaseDriver = "sqlite"

	// DefaultDatabaseDSN is the default SQLite file for the catalog
	DefaultDatabaseDSN = "./library.db"
)
