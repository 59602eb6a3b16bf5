package peg

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// ParseError records a problem found in the input text: either a failed
// match reported under enforcement, or a failed user action. Parse errors
// are appended to the shared per-parse list in discovery order and do not
// stop the parse.
type ParseError struct {
	Location *InputLocation
	Path     *MatcherPath
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, col %d) in rule %s",
		e.Message, e.Location.Row()+1, e.Location.Column()+1, e.Path)
}

// FormatParseError renders the error together with the offending input
// line and a caret marking the error column.
func FormatParseError(e *ParseError, buf *InputBuffer) string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "%s (line %d, col %d):\n", e.Message, e.Location.Row()+1, e.Location.Column()+1)
	line := buf.LineText(e.Location.Row())
	out.WriteString(line)
	out.WriteByte('\n')
	for i := 0; i < e.Location.Column(); i++ {
		if i < len(line) && line[i] == '\t' {
			out.WriteByte('\t')
		} else {
			out.WriteByte(' ')
		}
	}
	out.WriteByte('^')
	out.WriteByte('\n')
	return out.String()
}

// ActionError is the recoverable failure a semantic action raises to abort
// its own match. The driver folds it into a logged ParseError and treats
// the action as a plain match failure.
type ActionError struct {
	Message string
}

func (e *ActionError) Error() string { return e.Message }

// NewActionError creates an ActionError with a formatted message.
func NewActionError(format string, args ...interface{}) *ActionError {
	return &ActionError{Message: fmt.Sprintf(format, args...)}
}

// RuntimeError is a fatal parser fault: a broken grammar detected at run
// time, or an unexpected panic out of matcher or action code. It unwinds
// to the root and terminates the parse.
type RuntimeError struct {
	Message string
	Cause   error
}

func (e *RuntimeError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RuntimeError) Unwrap() error { return e.Cause }

// failGrammar raises a grammar-defect fault. Defects signal a broken
// grammar rather than bad input, so they are fatal.
func failGrammar(format string, args ...interface{}) {
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...)})
}

// ensureGrammar raises a grammar-defect fault if cond is false.
func ensureGrammar(cond bool, format string, args ...interface{}) {
	if !cond {
		failGrammar(format, args...)
	}
}

// wrapFault converts an arbitrary panic value into a RuntimeError carrying
// the rendered diagnostic, preserving the original cause.
func wrapFault(recovered interface{}, diagnostic string) *RuntimeError {
	var cause error
	if err, ok := recovered.(error); ok {
		cause = errors.WithStack(err)
	} else {
		cause = errors.Errorf("panic: %v", recovered)
	}
	return &RuntimeError{Message: diagnostic, Cause: cause}
}
