// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ideafile saves and loads generation runs as YAML files. A run
// file is the hand-off artifact for downstream consumers (tech-stack
// advisors, pitch tooling) and lets the user refine ideas from an
// earlier run without regenerating.
package ideafile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// RunFile is the on-disk representation of one generation run.
type RunFile struct {
	Request RunRequest   `yaml:"request"`
	Ideas   []types.Idea `yaml:"ideas"`
	Summary RunSummary   `yaml:"summary"`
}

// RunRequest stores the inputs that produced the run.
type RunRequest struct {
	Theme       string   `yaml:"theme,omitempty"`
	Constraints []string `yaml:"constraints,omitempty"`
	Count       int      `yaml:"count"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	TopScore  float64   `yaml:"top_score"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Write saves a ranked idea batch and its request to a YAML file,
// creating the parent directory if needed.
func Write(path string, req RunRequest, ideas []types.Idea) error {
	rf := RunFile{
		Request: req,
		Ideas:   ideas,
		Summary: RunSummary{
			Total:     len(ideas),
			Timestamp: time.Now(),
		},
	}
	if len(ideas) > 0 {
		rf.Summary.TopScore = ideas[0].OverallScore
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating runs directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved run file from disk.
func Read(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
