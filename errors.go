package brio

import (
	"fmt"
	"strings"

	"github.com/brio-lang/brio/lexer"
)

// LexErrors aggregates every lexical error found while loading a codebase,
// so a caller sees all of them at once instead of stopping at the first.
type LexErrors struct {
	Errors []lexer.Error
}

func (e LexErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("brio lexical error:\n\n")
	for _, err := range e.Errors {
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", err.Pos.File, err.Pos.Line, err.Pos.Col, err.Message))
	}
	return msg.String()
}
