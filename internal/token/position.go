// Package token holds the source-position type shared by the parse tree,
// the decorated IR, and the diagnostic formatter.
package token

import "fmt"

// Position identifies a single point in a source file.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.Offset == 0
}
