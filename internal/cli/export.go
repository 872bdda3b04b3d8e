package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/exporters"
	"github.com/mrlokans/librarian/internal/services"
)

// ExportCommand writes every author and book to an xlsx workbook
type ExportCommand struct {
	cfg        *config.Config
	OutputPath string
	Out        io.Writer
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{cfg: cfg, Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	bindDatabaseFlags(fs, &cmd.cfg.Database)
	fs.StringVar(&cmd.OutputPath, "o", "library.xlsx", "Path of the workbook to write")
	fs.Usage = usage(fs, "export [-o library.xlsx] [options]", "Export the catalog to an Excel workbook with Authors and Books sheets.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.OutputPath == "" {
		return fmt.Errorf("required flag -o not provided")
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	catalog, err := services.OpenCatalog(cmd.cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	authors, err := catalog.Authors.GetAll()
	if err != nil {
		return err
	}
	books, err := catalog.Books.GetAll()
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	var exporter exporters.CatalogExporter = exporters.NewXLSXExporter(absPath)
	result, err := exporter.Export(authors, books)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Exported %d authors and %d books to %s\n", result.AuthorsExported, result.BooksExported, absPath)
	return nil
}
