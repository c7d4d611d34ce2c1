// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/internal/engine"
	"github.com/pdiddy/idea-engine/internal/ideafile"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a ranked batch of project ideas",
	Long: `Generate synthesizes project ideas for a theme under the given
constraints, scores them, and prints them ranked by overall score. The same
inputs always produce the same batch. Use --save to write the run to a YAML
file for later refinement or downstream tooling.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	theme, _ := cmd.Flags().GetString("theme")
	if theme == "" && len(args) > 0 {
		theme = strings.Join(args, " ")
	}
	constraints := splitConstraints(cmd)
	count, _ := cmd.Flags().GetInt("count")
	if !cmd.Flags().Changed("count") {
		count = cfg.Engine.DefaultCount
	}

	eng := engine.New(catalog.Default())
	ideas, err := eng.GenerateIdeas(cmd.Context(), theme, constraints, count)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if !cmd.Flags().Changed("json") {
		jsonOutput = cfg.Output.Format == types.OutputJSON
	}
	if jsonOutput {
		if err := engine.FormatJSON(ideas, os.Stdout); err != nil {
			return err
		}
	} else {
		engine.FormatTable(ideas, os.Stdout)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		savePath = resolveRunPath(cfg.Output.RunsDir, savePath)
		req := ideafile.RunRequest{Theme: theme, Constraints: constraints, Count: count}
		if err := ideafile.Write(savePath, req, ideas); err != nil {
			return err
		}
		cmd.Printf("Saved run to %s\n", savePath)
	}

	return nil
}

// resolveRunPath places a bare --save filename under the configured runs
// directory. Paths that already carry a directory are used as given.
func resolveRunPath(runsDir, path string) string {
	if runsDir == "" || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(runsDir, path)
}

// splitConstraints parses the comma-separated --constraints flag,
// dropping empty segments.
func splitConstraints(cmd *cobra.Command) []string {
	raw, _ := cmd.Flags().GetString("constraints")
	if raw == "" {
		return nil
	}
	var constraints []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			constraints = append(constraints, c)
		}
	}
	return constraints
}

func init() {
	generateCmd.Flags().String("theme", "", "hackathon theme or focus area")
	generateCmd.Flags().String("constraints", "", "constraints (comma-separated, e.g. \"time,team_size\")")
	generateCmd.Flags().Int("count", 5, "number of ideas to generate")
	generateCmd.Flags().Bool("json", false, "output ideas as JSON")
	generateCmd.Flags().String("save", "", "write the run to a YAML file (bare names go to the configured runs dir)")

	rootCmd.AddCommand(generateCmd)
}
