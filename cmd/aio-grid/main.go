package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/cmd/aio-grid/internal/tui"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/errors"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/manifest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		columns      int
		spacing      float64
		manifestPath string
		verbose      bool
	)

	root := &cobra.Command{
		Use:   "aio-grid",
		Short: "Interactive masonry grid demo",
		Long: "aio-grid loads an item manifest and renders it as navigable\n" +
			"masonry sections in the terminal. Arrow keys move focus, '/'\n" +
			"filters the history section, 'q' quits.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			errors.SetHandler(&errors.LogHandler{Logger: logger})

			m, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}

			return tui.Run(tui.Options{
				Manifest: m,
				Columns:  columns,
				Spacing:  spacing,
				Logger:   logger,
			})
		},
	}

	root.Flags().IntVar(&columns, "columns", 3, "number of masonry columns")
	root.Flags().Float64Var(&spacing, "spacing", 2, "gap between cells")
	root.Flags().StringVar(&manifestPath, "manifest", "items.yaml", "path to the item manifest")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.Execute()
}
