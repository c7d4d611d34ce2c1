package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString())
	},
}

// versionString reports the release version with the toolchain and, when
// built from a checkout, the VCS revision.
func versionString() string {
	s := fmt.Sprintf("idea-engine %s (%s %s/%s)",
		version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	for _, kv := range info.Settings {
		if kv.Key == "vcs.revision" && len(kv.Value) >= 12 {
			return s + ", rev " + kv.Value[:12]
		}
	}
	return s
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
