package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/services"
)

// SeedCommand fills the catalog with a few well-known books
type SeedCommand struct {
	cfg *config.Config
	Out io.Writer
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{cfg: cfg, Out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	bindDatabaseFlags(fs, &cmd.cfg.Database)
	fs.Usage = usage(fs, "seed [options]", "Insert a small sample catalog of authors and books.")
	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	catalog, err := services.OpenCatalog(cmd.cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	_ = catalog.Initialize()

	saved, err := services.Seed(catalog.Books)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Seeded %d books.\n", saved)
	return nil
}
