package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/pkg/types"
)

func testEngine() *Engine {
	return New(catalog.Default())
}

func TestGenerateIdeasValidation(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	tests := []struct {
		name        string
		constraints []string
		count       int
		errMsg      string
	}{
		{"zero count", nil, 0, "count must be positive"},
		{"negative count", nil, -3, "count must be positive"},
		{"blank constraint", []string{"time", "  "}, 2, "constraint 1 is blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ideas, err := e.GenerateIdeas(ctx, "theme", tt.constraints, tt.count)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("err = %v, want containing %q", err, tt.errMsg)
			}
			if ideas != nil {
				t.Error("no partial batch should be returned on validation failure")
			}
		})
	}
}

func TestGenerateIdeasClimateTheme(t *testing.T) {
	e := testEngine()

	ideas, err := e.GenerateIdeas(context.Background(), "Climate Change", []string{"48_hours", "mobile_first"}, 3)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}
	if len(ideas) != 3 {
		t.Fatalf("len(ideas) = %d, want 3", len(ideas))
	}

	for i, idea := range ideas {
		if idea.Domain != "environment" {
			t.Errorf("idea %d: domain = %q, want environment", i, idea.Domain)
		}
		if i > 0 && ideas[i].OverallScore > ideas[i-1].OverallScore {
			t.Errorf("ideas not sorted: [%d]=%f > [%d]=%f",
				i, ideas[i].OverallScore, i-1, ideas[i-1].OverallScore)
		}
	}
}

func TestGenerateIdeasEmptyTheme(t *testing.T) {
	e := testEngine()
	cat := catalog.Default()

	ideas, err := e.GenerateIdeas(context.Background(), "", nil, 1)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}
	if len(ideas) != 1 {
		t.Fatalf("len(ideas) = %d, want 1", len(ideas))
	}
	if !cat.HasDomain(ideas[0].Domain) {
		t.Errorf("domain %q not in catalog", ideas[0].Domain)
	}
}

func TestGenerateIdeasReproducible(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	a, err := e.GenerateIdeas(ctx, "AI for Good", []string{"time"}, 5)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}
	b, err := e.GenerateIdeas(ctx, "AI for Good", []string{"time"}, 5)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical requests produced different batches")
	}
}

func TestGenerateIdeasScoreInvariants(t *testing.T) {
	e := testEngine()

	ideas, err := e.GenerateIdeas(context.Background(), "mobile money", []string{"time"}, 10)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}

	for i, idea := range ideas {
		if idea.FeasibilityScore < 0 || idea.FeasibilityScore > 100 {
			t.Errorf("idea %d: feasibility %f out of range", i, idea.FeasibilityScore)
		}
		if idea.InnovationScore < 0 || idea.InnovationScore > 100 {
			t.Errorf("idea %d: innovation %f out of range", i, idea.InnovationScore)
		}
		want := idea.FeasibilityScore*0.6 + idea.InnovationScore*0.4
		if math.Abs(idea.OverallScore-want) > 1e-9 {
			t.Errorf("idea %d: overall %f, want %f", i, idea.OverallScore, want)
		}
	}
}

func TestGenerateIdeasCancelled(t *testing.T) {
	e := testEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ideas, err := e.GenerateIdeas(ctx, "theme", nil, 3)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if ideas != nil {
		t.Error("cancelled batch should return no ideas")
	}
}

func TestRefineIdeaDelegates(t *testing.T) {
	e := testEngine()

	ideas, err := e.GenerateIdeas(context.Background(), "Climate Change", nil, 1)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}

	before := ideas[0].FeasibilityScore
	refined := e.RefineIdea(ideas[0], "make it simpler")

	if refined.FeasibilityScore != math.Min(100, before+10) {
		t.Errorf("feasibility = %f, want %f", refined.FeasibilityScore, math.Min(100, before+10))
	}
	if len(refined.Features) > 5 || len(refined.Technologies) > 2 {
		t.Error("simplify feedback should trim features and technologies")
	}
	if ideas[0].FeasibilityScore != before {
		t.Error("input idea mutated by RefineIdea")
	}
}

func TestFormatTable(t *testing.T) {
	e := testEngine()
	ideas, err := e.GenerateIdeas(context.Background(), "Climate Change", nil, 2)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}

	var buf bytes.Buffer
	FormatTable(ideas, &buf)
	s := buf.String()

	if !strings.Contains(s, "environment") {
		t.Error("table should show the domain")
	}
	if !strings.Contains(s, "2 ideas") {
		t.Error("table should show the idea count")
	}
}

func TestFormatTableTruncatesLongTitleByRune(t *testing.T) {
	long := strings.Repeat("ü", 60)
	ideas := []types.Idea{{Title: long, Domain: "environment"}}

	var buf bytes.Buffer
	FormatTable(ideas, &buf)
	s := buf.String()

	if !utf8.ValidString(s) {
		t.Fatal("truncation split a multibyte rune")
	}
	if !strings.Contains(s, strings.Repeat("ü", 41)+"...") {
		t.Error("long title should be cut to 41 runes plus ellipsis")
	}
	if strings.Contains(s, strings.Repeat("ü", 42)) {
		t.Error("truncated title longer than 41 runes")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No ideas") {
		t.Error("empty output should say 'No ideas'")
	}
}

func TestFormatJSON(t *testing.T) {
	e := testEngine()
	ideas, err := e.GenerateIdeas(context.Background(), "", nil, 1)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(ideas, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.Idea
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("len(parsed) = %d, want 1", len(parsed))
	}
	if parsed[0].Title != ideas[0].Title {
		t.Errorf("Title = %q, want %q", parsed[0].Title, ideas[0].Title)
	}
}

func TestFormatDetail(t *testing.T) {
	e := testEngine()
	ideas, err := e.GenerateIdeas(context.Background(), "Climate Change", nil, 1)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}

	var buf bytes.Buffer
	FormatDetail(ideas[0], &buf)
	s := buf.String()

	if !strings.Contains(s, ideas[0].Title) {
		t.Error("detail should contain the title")
	}
	if !strings.Contains(s, "Features:") {
		t.Error("detail should list features")
	}
}
