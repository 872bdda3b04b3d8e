package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/librarian/internal/config"
)

// bindDatabaseFlags lets a command override the configured connection.
func bindDatabaseFlags(fs *flag.FlagSet, db *config.Database) {
	fs.StringVar(&db.Driver, "driver", db.Driver, "Database driver: sqlite, postgres or mysql")
	fs.StringVar(&db.DSN, "db", db.DSN, "Database file (sqlite) or connection string")
}

func usage(fs *flag.FlagSet, synopsis, description string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s\n\n", os.Args[0], synopsis)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
}
