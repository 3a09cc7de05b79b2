// Package cerrors formats compiler diagnostics with source context,
// line/column information, and a caret pointing at the offending
// location.
package cerrors

import (
	"fmt"
	"strings"

	"github.com/rtoal/carlos/internal/token"
)

// CompilerError is a single diagnostic with position and source context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError builds a CompilerError.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// sourceRow is one numbered line of source destined for a rendered frame.
type sourceRow struct {
	num  int
	text string
}

// window returns the rows from before lines above e.Pos.Line through
// after lines below it, clamped to the bounds of the source. It is
// empty when no source was attached to the error.
func (e *CompilerError) window(before, after int) []sourceRow {
	if e.Source == "" {
		return nil
	}
	all := strings.Split(e.Source, "\n")
	lo, hi := e.Pos.Line-before, e.Pos.Line+after
	if lo < 1 {
		lo = 1
	}
	if hi > len(all) {
		hi = len(all)
	}
	if lo > hi {
		return nil
	}
	rows := make([]sourceRow, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		rows = append(rows, sourceRow{num: n, text: all[n-1]})
	}
	return rows
}

func gutter(lineNum int) string {
	return fmt.Sprintf("%4d | ", lineNum)
}

// render assembles the location header, the numbered source rows (with
// a caret under the offending column on the row matching e.Pos.Line),
// and the message, optionally wrapped in ANSI color.
func (e *CompilerError) render(rows []sourceRow, color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	for _, row := range rows {
		g := gutter(row.num)
		sb.WriteString(g)
		sb.WriteString(row.text)
		sb.WriteByte('\n')
		if row.num != e.Pos.Line {
			continue
		}
		sb.WriteString(strings.Repeat(" ", len(g)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m^\033[0m\n")
		} else {
			sb.WriteString("^\n")
		}
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// Format renders the error with a single quoted source line and a caret.
// If color is true, ANSI codes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	return e.render(e.window(0, 0), color)
}

// FormatWithContext renders the error with contextLines of surrounding
// source above and below the offending line, falling back to Format
// when no source is available to build a window from.
func (e *CompilerError) FormatWithContext(contextLines int, color bool) string {
	rows := e.window(contextLines, contextLines)
	if len(rows) == 0 {
		return e.Format(color)
	}
	return e.render(rows, color)
}
