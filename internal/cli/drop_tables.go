package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/services"
)

// DropTablesCommand drops the books and authors tables
type DropTablesCommand struct {
	cfg *config.Config
	Out io.Writer
}

func NewDropTablesCommand(cfg *config.Config) *DropTablesCommand {
	return &DropTablesCommand{cfg: cfg, Out: os.Stdout}
}

func (cmd *DropTablesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("drop-tables", flag.ContinueOnError)
	bindDatabaseFlags(fs, &cmd.cfg.Database)
	fs.Usage = usage(fs, "drop-tables [options]", "Drop the books and authors tables. All data is lost.")
	return fs.Parse(args)
}

func (cmd *DropTablesCommand) Run() error {
	catalog, err := services.OpenCatalog(cmd.cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	if err := catalog.DropTables(); err != nil {
		fmt.Fprintln(cmd.Out, "Some tables could not be dropped, see the log.")
		return nil
	}
	fmt.Fprintln(cmd.Out, "Tables dropped.")
	return nil
}
