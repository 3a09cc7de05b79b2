package cerrors

import (
	"strings"
	"testing"

	"github.com/rtoal/carlos/internal/token"
)

func TestFormatPointsCaretAtColumn(t *testing.T) {
	source := "let x = y\n"
	err := NewCompilerError(token.Position{Line: 1, Column: 9}, "y has not been declared", source, "demo")
	out := err.Format(false)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "let x = y") {
		t.Errorf("source line not rendered: %q", lines[1])
	}
	caretLine := lines[2]
	if !strings.HasSuffix(caretLine, "^") {
		t.Errorf("caret line = %q, want it to end in ^", caretLine)
	}
	if !strings.Contains(out, "y has not been declared") {
		t.Error("message should be rendered")
	}
}

func TestFormatWithNoFileUsesLineColumnHeader(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 3, Column: 1}, "boom", "", "")
	out := err.Format(false)
	if !strings.HasPrefix(out, "Error at line 3:1") {
		t.Errorf("Format() = %q", out)
	}
}

func TestFormatColorWrapsCaretAndMessage(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "boom", "x\n", "demo")
	out := err.Format(true)
	if !strings.Contains(out, "\033[1;31m^\033[0m") {
		t.Errorf("Format(true) should color the caret, got %q", out)
	}
}

func TestFormatWithContextIncludesSurroundingLines(t *testing.T) {
	source := "a\nb\nc\nd\ne\n"
	err := NewCompilerError(token.Position{Line: 3, Column: 1}, "boom", source, "demo")
	out := err.FormatWithContext(1, false)
	if !strings.Contains(out, "b\n") || !strings.Contains(out, "d\n") {
		t.Errorf("expected surrounding lines b and d in output, got %q", out)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = NewCompilerError(token.Position{Line: 1, Column: 1}, "boom", "", "")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
