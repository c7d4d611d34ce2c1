// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the built-in reference data",
	Long: `Catalog lists the reference data the engine generates from: problem
domains with their problems and audiences, technology combinations, and
innovation patterns.`,
}

var catalogDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List problem domains",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Default()
		for _, id := range cat.DomainIDs() {
			d := cat.Domain(id)
			fmt.Fprintf(os.Stdout, "%s\n", id)
			fmt.Fprintf(os.Stdout, "  problems:  %s\n", strings.Join(d.Problems, "; "))
			fmt.Fprintf(os.Stdout, "  audiences: %s\n", strings.Join(d.Audiences, ", "))
		}
	},
}

var catalogTechCmd = &cobra.Command{
	Use:   "tech",
	Short: "List technology combinations",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Default()
		for _, id := range cat.TechCategoryIDs() {
			t := cat.TechCategory(id)
			fmt.Fprintf(os.Stdout, "%s\n", id)
			fmt.Fprintf(os.Stdout, "  technologies: %s\n", strings.Join(t.Technologies, ", "))
			fmt.Fprintf(os.Stdout, "  applications: %s\n", strings.Join(t.Applications, ", "))
		}
	},
}

var catalogPatternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List innovation patterns",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range catalog.Default().InnovationPatterns() {
			fmt.Fprintln(os.Stdout, p)
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogDomainsCmd)
	catalogCmd.AddCommand(catalogTechCmd)
	catalogCmd.AddCommand(catalogPatternsCmd)

	rootCmd.AddCommand(catalogCmd)
}
