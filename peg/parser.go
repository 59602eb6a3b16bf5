package peg

import (
	"github.com/sirupsen/logrus"
)

// Parser drives matcher graphs against input text. The zero value is
// ready to use: failures under enforcement are reported but not
// recovered, and nothing is logged.
//
// A Parser (and the matcher graph it runs) can serve concurrent parses;
// every Parse call owns its own context chain, error list and last-node
// cell.
type Parser struct {
	// Handler is the strategy invoked at enforced failure points.
	// Nil means ReportingHandler.
	Handler ParseErrorHandler

	// Logger, when set, traces matcher execution. Expensive; intended
	// for grammar debugging.
	Logger *logrus.Logger
}

// ParsingResult is the outcome of one parse run.
type ParsingResult struct {
	// Matched is true iff the root rule matched.
	Matched bool

	// Root is the root parse-tree node, or nil if the root rule failed
	// or produces no node.
	Root *Node

	// ParseErrors lists the recoverable errors found, in discovery
	// order.
	ParseErrors []*ParseError

	// Buffer is the input the parse ran against, for node-text lookups.
	Buffer *InputBuffer
}

// HasErrors reports whether any parse errors were recorded.
func (r *ParsingResult) HasErrors() bool { return len(r.ParseErrors) > 0 }

// Parse runs the given rule against the input text.
//
// It returns normally for match failures and recoverable parse errors.
// Grammar defects and unexpected panics out of matcher or action code
// surface as a *RuntimeError panic.
func (p *Parser) Parse(rule Matcher, input string) *ParsingResult {
	handler := p.Handler
	if handler == nil {
		handler = ReportingHandler{}
	}
	run := &parseRun{
		buffer:  NewInputBuffer(input),
		handler: handler,
		parser:  p,
		logger:  p.Logger,
	}
	root := newRootContext(run, rule)
	matched := root.RunMatcher()
	return &ParsingResult{
		Matched:     matched,
		Root:        root.Node(),
		ParseErrors: run.parseErrors,
		Buffer:      run.buffer,
	}
}
