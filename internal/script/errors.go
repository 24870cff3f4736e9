package script

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrSyntax matches every *SyntaxError via errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports malformed query text.
type SyntaxError struct {
	Input string // the text being parsed
	Pos   int    // byte offset of the offending token
	Token string // offending token text, empty at end of input
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at column %d: %s", e.Pos+1, e.Msg)
	}

	return fmt.Sprintf("syntax error at column %d near %q: %s", e.Pos+1, e.Token, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) hold.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Snippet returns the input with a caret under the offending position.
func (e *SyntaxError) Snippet() string {
	pos := min(max(e.Pos, 0), len(e.Input))

	return e.Input + "\n" + strings.Repeat(" ", utf8.RuneCountInString(e.Input[:pos])) + "^"
}
