// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the idea-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is the unmarshalled configuration, populated by initConfig before
// any subcommand runs.
var cfg types.AssistantConfig

// rootCmd is the base command for the idea-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "idea-engine",
	Short: "Deterministic hackathon project idea generation and ranking",
	Long: `idea-engine synthesizes hackathon project concepts from a theme and a
constraint list, scores each candidate for feasibility and innovation, and
ranks them by a weighted overall score. Generation is deterministic: the same
theme, constraints, and count always produce the same ranked ideas.

Each operation is a subcommand: generate produces a ranked batch, refine
adjusts one idea from a saved run, and catalog inspects the built-in
reference data.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./idea-engine.yaml or ~/.config/idea-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idea-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idea-engine"))
		}
	}

	viper.SetEnvPrefix("IDEA_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("engine.default_count", 5)
	viper.SetDefault("output.runs_dir", "output/ideas")
	viper.SetDefault("output.format", string(types.OutputTable))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	c, err := unmarshalConfig(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	cfg = c
}

// unmarshalConfig decodes the settings held by v into a typed config.
func unmarshalConfig(v *viper.Viper) (types.AssistantConfig, error) {
	var c types.AssistantConfig
	if err := v.Unmarshal(&c); err != nil {
		return types.AssistantConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
