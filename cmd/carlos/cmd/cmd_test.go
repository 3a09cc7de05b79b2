package cmd

import "testing"

func TestRunAnalyzeUnknownProgram(t *testing.T) {
	if err := runAnalyze(analyzeCmd, []string{"does-not-exist"}); err == nil {
		t.Fatal("expected an error for an unknown demo program")
	}
}

func TestRunAnalyzeKnownProgram(t *testing.T) {
	if err := runAnalyze(analyzeCmd, []string{"hello"}); err != nil {
		t.Fatalf("analyze hello: %v", err)
	}
}

func TestRunGenerateKnownProgram(t *testing.T) {
	if err := runGenerate(generateCmd, []string{"factorial"}); err != nil {
		t.Fatalf("generate factorial: %v", err)
	}
}

func TestRunOptimizeUnknownPass(t *testing.T) {
	disabledPasses = []string{"not-a-real-pass"}
	defer func() { disabledPasses = nil }()
	if err := runOptimize(optimizeCmd, []string{"fizzbuzz"}); err == nil {
		t.Fatal("expected an error for an unknown optimizer pass")
	}
}

func TestRunOptimizeKnownProgram(t *testing.T) {
	if err := runOptimize(optimizeCmd, []string{"point"}); err != nil {
		t.Fatalf("optimize point: %v", err)
	}
}
