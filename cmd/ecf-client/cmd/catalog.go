package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/dgii"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [name]",
	Short: "Print a DGII code table",
	Long: `Print one of the DGII code tables used by the validators.

Catalogs: ` + strings.Join(dgii.CatalogNames(), ", ") + `

Examples:
  ecf-client catalog
  ecf-client catalog municipalities -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if outputFormat == "json" {
			return printJSON(dgii.CatalogNames())
		}
		for _, name := range dgii.CatalogNames() {
			fmt.Println(name)
		}
		return nil
	}

	entries, err := dgii.Catalog(args[0])
	if err != nil {
		return err
	}
	if outputFormat == "json" {
		return printJSON(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tABBR\tPARENT\tRATE")
	for _, e := range entries {
		rate := ""
		if e.Rate != nil {
			rate = fmt.Sprintf("%d%%", *e.Rate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Code, e.Name, e.Abbreviation, e.Parent, rate)
	}
	return w.Flush()
}
