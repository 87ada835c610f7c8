package main

import (
	"os"

	"github.com/spf13/cobra"

	"plotforma/admissions-guide/internal/catalog"
)

type rootOptions struct {
	catalogPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "advisor",
		Short:         "Admissions advisor without the API server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "catalog JSON file; the embedded catalog is used when empty")

	cmd.AddCommand(newAskCmd(opts))
	cmd.AddCommand(newEvaluateCmd())

	return cmd
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(o.catalogPath)
}
