package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/services"
)

// MenuCommand runs the interactive console menu
type MenuCommand struct {
	cfg *config.Config
	In  io.Reader
	Out io.Writer
}

func NewMenuCommand(cfg *config.Config) *MenuCommand {
	return &MenuCommand{cfg: cfg, In: os.Stdin, Out: os.Stdout}
}

func (cmd *MenuCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	bindDatabaseFlags(fs, &cmd.cfg.Database)
	fs.Func("policy", "What deleting an author does to its books: restrict or cascade", func(s string) error {
		cmd.cfg.Library.AuthorDeletePolicy = config.DeletePolicy(s)
		return nil
	})
	fs.BoolVar(&cmd.cfg.Library.CaseSensitiveSearch, "case-sensitive", cmd.cfg.Library.CaseSensitiveSearch, "Match author names case-sensitively when searching")
	fs.Usage = usage(fs, "menu [options]", "Manage authors and books from an interactive console menu.")
	return fs.Parse(args)
}

func (cmd *MenuCommand) Run() error {
	catalog, err := services.OpenCatalog(cmd.cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	fmt.Fprintln(cmd.Out, "Connected.")
	menu := NewMenu(cmd.In, cmd.Out, catalog.Authors, catalog.Books, catalog.DeletePolicy)
	return menu.Run()
}
