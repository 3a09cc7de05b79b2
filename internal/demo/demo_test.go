package demo

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/rtoal/carlos/internal/generator"
	"github.com/rtoal/carlos/internal/optimizer"
	"github.com/rtoal/carlos/internal/semantic"
)

// TestPipeline runs every canned program through the full
// analyze/optimize/generate pipeline and snapshots the emitted target
// source, exercising the packages end to end the way cmd/carlos does.
func TestPipeline(t *testing.T) {
	for _, p := range List() {
		t.Run(p.Name, func(t *testing.T) {
			decorated, err := semantic.Analyze(p.Tree, "", p.Name)
			if err != nil {
				t.Fatalf("analyze %s: %v", p.Name, err)
			}
			optimized := optimizer.Optimize(decorated)
			out := generator.Generate(optimized)
			if out == "" {
				t.Fatalf("generate %s: empty output", p.Name)
			}
			snaps.MatchSnapshot(t, p.Name, out)
		})
	}
}

func TestListAndGet(t *testing.T) {
	all := List()
	if len(all) == 0 {
		t.Fatal("expected at least one canned program")
	}
	for _, p := range all {
		if _, ok := Get(p.Name); !ok {
			t.Errorf("Get(%q) should find the program List() returned", p.Name)
		}
	}
	if _, ok := Get("does-not-exist"); ok {
		t.Error("Get of an unknown name should report false")
	}
}
