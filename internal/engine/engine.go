// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine is the public boundary of the idea engine. It combines
// theme classification, concurrent candidate synthesis, and ranking into
// a single generate call, and exposes single-idea refinement.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/internal/classify"
	"github.com/pdiddy/idea-engine/internal/rank"
	"github.com/pdiddy/idea-engine/internal/refine"
	"github.com/pdiddy/idea-engine/internal/synth"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// Engine generates and refines project ideas against a shared catalog.
// It is safe for concurrent use: the catalog is immutable and each
// synthesis call owns its own generator.
type Engine struct {
	classifier  *classify.Classifier
	synthesizer *synth.Synthesizer
}

// New returns an engine backed by cat.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		classifier:  classify.New(cat),
		synthesizer: synth.New(cat),
	}
}

// GenerateIdeas produces count ranked ideas for the theme under the
// given constraints. Input is validated before any synthesis begins, so
// the caller gets either a complete, fully scored, sorted batch or a
// validation error. The count candidates are synthesized concurrently;
// index order is irrelevant until the final stable sort. Cancelling ctx
// abandons the batch with no partial result.
func (e *Engine) GenerateIdeas(ctx context.Context, theme string, constraints []string, count int) ([]types.Idea, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	for i, c := range constraints {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("constraint %d is blank", i)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	domainIDs := e.classifier.Classify(theme)

	ideas := make([]types.Idea, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ideas[i] = e.synthesizer.Synthesize(theme, domainIDs, constraints, i)
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	return rank.Rank(ideas, constraints), nil
}

// RefineIdea returns a copy of idea adjusted for the feedback. The input
// idea is untouched, and the result is not re-ranked against any batch.
func (e *Engine) RefineIdea(idea types.Idea, feedback string) types.Idea {
	return refine.Refine(idea, feedback)
}
