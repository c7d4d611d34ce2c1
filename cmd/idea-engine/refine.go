// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/internal/engine"
	"github.com/pdiddy/idea-engine/internal/ideafile"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var refineCmd = &cobra.Command{
	Use:   "refine <run-file>",
	Short: "Refine one idea from a saved run using free-text feedback",
	Long: `Refine loads a saved run file, applies feedback to the idea at the
given rank, and prints the adjusted idea. Feedback keywords steer the
adjustment: "simpler" trims scope, "more innovative" adds novel features,
"feasible"/"timeline" stretches the schedule estimate.

The run is not re-ranked. Use --save to write the updated run back out with
the refined idea in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefine,
}

func runRefine(cmd *cobra.Command, args []string) error {
	feedback, _ := cmd.Flags().GetString("feedback")
	if feedback == "" {
		return fmt.Errorf("feedback required: pass --feedback with the adjustment to make")
	}
	rankPos, _ := cmd.Flags().GetInt("rank")

	rf, err := ideafile.Read(args[0])
	if err != nil {
		return err
	}
	if rankPos < 1 || rankPos > len(rf.Ideas) {
		return fmt.Errorf("rank %d out of range: run has %d idea(s)", rankPos, len(rf.Ideas))
	}

	eng := engine.New(catalog.Default())
	refined := eng.RefineIdea(rf.Ideas[rankPos-1], feedback)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if !cmd.Flags().Changed("json") {
		jsonOutput = cfg.Output.Format == types.OutputJSON
	}
	if jsonOutput {
		if err := engine.FormatJSON([]types.Idea{refined}, os.Stdout); err != nil {
			return err
		}
	} else {
		engine.FormatDetail(refined, os.Stdout)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		savePath = resolveRunPath(cfg.Output.RunsDir, savePath)
		rf.Ideas[rankPos-1] = refined
		if err := ideafile.Write(savePath, rf.Request, rf.Ideas); err != nil {
			return err
		}
		cmd.Printf("Saved updated run to %s\n", savePath)
	}

	return nil
}

func init() {
	refineCmd.Flags().String("feedback", "", "free-text feedback (e.g. \"make it simpler\")")
	refineCmd.Flags().Int("rank", 1, "rank of the idea to refine (1 = top)")
	refineCmd.Flags().Bool("json", false, "output the refined idea as JSON")
	refineCmd.Flags().String("save", "", "write the updated run to a YAML file (bare names go to the configured runs dir)")

	rootCmd.AddCommand(refineCmd)
}
