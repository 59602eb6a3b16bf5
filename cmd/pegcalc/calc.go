package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/codeaudit/parboiled/peg"
)

// calculator evaluates arithmetic expressions by running semantic actions
// against a value stack while the grammar matches.
type calculator struct {
	parser *peg.Parser
	root   peg.Matcher
	stack  []float64
}

func newCalculator(recoverErrors bool, logger *logrus.Logger) *calculator {
	c := &calculator{}
	c.parser = &peg.Parser{Logger: logger}
	if recoverErrors {
		c.parser.Handler = &peg.RecoveringHandler{Logger: logger}
	}
	c.root = c.buildGrammar()
	return c
}

// Grammar:
//
//	input  = ws expr EOI
//	expr   = term (('+' | '-') ws term)*
//	term   = factor (('*' | '/') ws factor)*
//	factor = number | '(' ws expr ')' ws
//	number = digit+ ws
func (c *calculator) buildGrammar() peg.Matcher {
	exprProxy := peg.NewProxy()

	ws := peg.Suppress(peg.AsLeaf(peg.Label(peg.ZeroOrMore(peg.AnyOf(" \t")), "ws")))

	number := peg.Label(peg.Sequence(
		peg.AsLeaf(peg.Label(peg.OneOrMore(peg.CharRange('0', '9')), "digits")),
		peg.Do(c.pushNumber),
		ws,
	), "number")

	factor := peg.Label(peg.FirstOf(
		number,
		peg.Sequence(token('(', ws), exprProxy, token(')', ws)),
	), "factor")

	term := peg.Label(peg.Sequence(
		factor,
		peg.ZeroOrMore(peg.FirstOf(
			peg.Sequence(token('*', ws), factor, peg.Do(c.binary('*'))),
			peg.Sequence(token('/', ws), factor, peg.Do(c.binary('/'))),
		)),
	), "term")

	expr := peg.Label(peg.Sequence(
		term,
		peg.ZeroOrMore(peg.FirstOf(
			peg.Sequence(token('+', ws), term, peg.Do(c.binary('+'))),
			peg.Sequence(token('-', ws), term, peg.Do(c.binary('-'))),
		)),
	), "expr")
	exprProxy.Arm(expr)

	return peg.Label(peg.Sequence(ws, expr, peg.Eoi()), "input")
}

func token(char rune, ws peg.Matcher) peg.Matcher {
	return peg.Sequence(peg.Ch(char), ws)
}

func (c *calculator) pushNumber(ctx *peg.MatcherContext) (bool, error) {
	text := ctx.NodeText(ctx.LastNode())
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false, peg.NewActionError("bad number %q", text)
	}
	c.stack = append(c.stack, value)
	return true, nil
}

func (c *calculator) binary(op rune) peg.ActionFunc {
	return func(ctx *peg.MatcherContext) (bool, error) {
		if len(c.stack) < 2 {
			return false, peg.NewActionError("value stack underflow at %q", op)
		}
		b := c.stack[len(c.stack)-1]
		a := c.stack[len(c.stack)-2]
		c.stack = c.stack[:len(c.stack)-2]
		var v float64
		switch op {
		case '+':
			v = a + b
		case '-':
			v = a - b
		case '*':
			v = a * b
		case '/':
			if b == 0 {
				return false, peg.NewActionError("division by zero")
			}
			v = a / b
		}
		c.stack = append(c.stack, v)
		return true, nil
	}
}

// Eval parses the expression and returns its value.
func (c *calculator) Eval(input string) (float64, *peg.ParsingResult, error) {
	c.stack = c.stack[:0]
	result := c.parser.Parse(c.root, input)
	if !result.Matched {
		return 0, result, fmt.Errorf("not a valid expression: %q", input)
	}
	if len(c.stack) != 1 {
		return 0, result, fmt.Errorf("evaluation incomplete: %d values left", len(c.stack))
	}
	return c.stack[0], result, nil
}

// Tree parses the expression and returns its parse tree.
func (c *calculator) Tree(input string) (*peg.ParsingResult, error) {
	c.stack = c.stack[:0]
	result := c.parser.Parse(c.root, input)
	if !result.Matched {
		return result, fmt.Errorf("not a valid expression: %q", input)
	}
	return result, nil
}
