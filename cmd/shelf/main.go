package main

import (
	"os"
	"shelf/cmd/shelf/render"
	"shelf/internal/config"
	"shelf/internal/lending"
	"shelf/internal/library"

	"github.com/alecthomas/kong"
)

type CLI struct {
	List   ListCmd   `cmd:"" aliases:"ls" help:"List every book in the catalog"`
	Search SearchCmd `cmd:"" aliases:"s" help:"Search books by name"`
	Create CreateCmd `cmd:"" aliases:"c" help:"Add a new book to the catalog"`
	Borrow BorrowCmd `cmd:"" aliases:"b" help:"Lend a book to a borrower"`
	Return ReturnCmd `cmd:"" aliases:"r" help:"Take a book back from a borrower"`
	Delete DeleteCmd `cmd:"" aliases:"rm" help:"Delete a book from the catalog"`
	Init   InitCmd   `cmd:"" help:"Provision an empty catalog file"`
	Menu   MenuCmd   `cmd:"" help:"Run the interactive menu"`

	CatalogPath string `name:"catalog" help:"Path to the catalog file"`
	LedgerPath  string `name:"ledger" help:"Path to the loan ledger file"`
	ConfigPath  string `name:"config" help:"Path to the config file"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	configPath, err := config.ExpandPath(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	resolved, err := resolveStorePaths(cfg.Resolved(), c.CatalogPath, c.LedgerPath)
	if err != nil {
		return err
	}

	cat := library.NewFileCatalog(resolved.CatalogPath)
	led := library.NewFileLedger(resolved.LedgerPath)

	flow := lending.New(cat, led)
	flow.LoanPeriodDays = resolved.LoanPeriodDays
	flow.DailyFee = resolved.DailyFee

	globals := &Globals{
		Cat:      cat,
		Led:      led,
		Flow:     flow,
		Out:      os.Stdout,
		Render:   render.NewLipglossRendererAuto(os.Stdout),
		ReadLine: readLineFrom(os.Stdin, os.Stdout),
		Select:   defaultSelect,
	}
	ctx.Bind(globals)
	return nil
}

// resolveStorePaths applies the flag overrides and tilde-expands both
// store paths, wherever they came from.
func resolveStorePaths(cfg config.Resolved, catalogFlag, ledgerFlag string) (config.Resolved, error) {
	if catalogFlag != "" {
		cfg.CatalogPath = catalogFlag
	}
	if ledgerFlag != "" {
		cfg.LedgerPath = ledgerFlag
	}

	var err error
	if cfg.CatalogPath, err = config.ExpandPath(cfg.CatalogPath); err != nil {
		return cfg, err
	}
	if cfg.LedgerPath, err = config.ExpandPath(cfg.LedgerPath); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("shelf"),
		kong.Description("Single-user library catalog manager"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
