package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/plusk0/recordtable/internal/config"
	"github.com/plusk0/recordtable/internal/contacts"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:          "recordtable",
		Short:        "Edit a contact list in a sortable table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "./config.json", "path to the config file")
	cmd.Flags().String(config.FlagDatabase, "", "path to the SQLite database")
	cmd.Flags().Bool(config.FlagReadOnly, false, "open the table read-only")
	return cmd
}

func run(cfg config.App) error {
	store, err := contacts.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if seeded, err := store.Seed(time.Now()); err != nil {
		return err
	} else if seeded {
		log.Printf("seeded %s with sample contacts", cfg.Database)
	}
	list, err := store.All()
	if err != nil {
		return err
	}

	a := app.New()
	win := a.NewWindow(cfg.Title)
	content, err := createUI(a, win, store, &list, cfg)
	if err != nil {
		return err
	}
	win.SetContent(content)
	win.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	win.ShowAndRun()
	return nil
}
