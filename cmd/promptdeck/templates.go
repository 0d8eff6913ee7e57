package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/adapters/secondary/registry"
)

var templatesCatalog string

// templatesCmd lists the template catalog without starting the server
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available deck templates",
	Long: `List the built-in deck templates, plus any templates from an
external catalog file.

Example:
  promptdeck templates
  promptdeck templates --catalog my-catalog.yaml`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVar(&templatesCatalog, "catalog", "", "Extra template catalog YAML file")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	templates := registry.NewRegistry("")
	if templatesCatalog != "" {
		if err := templates.LoadCatalog(templatesCatalog); err != nil {
			return fmt.Errorf("loading template catalog: %w", err)
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLAYOUTS\tDESCRIPTION")
	for _, tpl := range templates.List() {
		layouts := make([]string, 0, len(tpl.ContentLayouts))
		for _, l := range tpl.ContentLayouts {
			layouts = append(layouts, fmt.Sprintf("%d", l))
		}
		fmt.Fprintf(w, "%s\t%s\t%d,%s\t%s\n", tpl.ID, tpl.Name, tpl.CoverLayout, strings.Join(layouts, ","), tpl.Description)
	}

	return w.Flush()
}
