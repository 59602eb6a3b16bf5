package peg

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/codeaudit/parboiled/charset"
)

// ParseErrorHandler is the strategy invoked when a matcher fails under
// enforcement. The handler sees the failed frame as-is and may mutate its
// cursor (skip input, inject virtual characters, resynchronise to a
// follower). Returning true reports the failure as recovered, so the
// parse continues as if the matcher had succeeded.
type ParseErrorHandler interface {
	HandleParseError(ctx *MatcherContext) bool
}

// ReportingHandler records the failure as a parse error and lets the
// match fail. This is the default strategy.
type ReportingHandler struct{}

var _ ParseErrorHandler = ReportingHandler{}

func (ReportingHandler) HandleParseError(ctx *MatcherContext) bool {
	ctx.AddParseError(expectedError(ctx))
	return false
}

// RecoveringHandler records the failure and then tries to repair the
// input: if the failed matcher expects exactly one possible character, it
// injects that character virtually and consumes it; otherwise it skips
// forward to the next character in the current follower set. Either way
// the failure is reported as recovered.
type RecoveringHandler struct {
	// Logger, when set, traces recovery decisions at debug level.
	Logger *logrus.Logger
}

var _ ParseErrorHandler = (*RecoveringHandler)(nil)

func (h *RecoveringHandler) HandleParseError(ctx *MatcherContext) bool {
	ctx.AddParseError(expectedError(ctx))

	// single-candidate insertion: pretend the missing character was there
	if candidate, ok := singleCharCandidate(ctx.Matcher()); ok {
		h.debugf(ctx, "recovering by inserting %q", candidate)
		ctx.InjectVirtualChar(candidate)
		ctx.AdvanceInputLocation()
		return true
	}

	// resynchronise: skip input until a character that may legally follow
	followers := ctx.CurrentFollowerChars()
	loc := ctx.CurrentLocation()
	for loc.Char() != charset.EOI && !followers.Match(loc.Char()) {
		loc = loc.Advance(ctx.InputBuffer())
	}
	h.debugf(ctx, "recovering by resynchronising at index %d", loc.Index())
	ctx.SetCurrentLocation(loc)
	return true
}

func (h *RecoveringHandler) debugf(ctx *MatcherContext, format string, args ...interface{}) {
	if h.Logger == nil {
		return
	}
	h.Logger.WithField("rule", ctx.Path().String()).Debugf(format, args...)
}

// singleCharCandidate reports the one character that would repair the
// failed matcher, if the matcher is a terminal consuming exactly one
// unambiguous character.
func singleCharCandidate(m Matcher) (rune, bool) {
	switch t := m.(type) {
	case *CharMatcher:
		if t.char != charset.EOI {
			return t.char, true
		}
	case *CharRangeMatcher:
		if t.lo == t.hi {
			return t.lo, true
		}
	case *CharSetMatcher:
		if runes, ok := charset.Runes(t.set); ok && len(runes) == 1 {
			return runes[0], true
		}
	case *StringMatcher:
		if len(t.runes) == 1 {
			return t.runes[0], true
		}
	}
	return 0, false
}

func expectedError(ctx *MatcherContext) *ParseError {
	return &ParseError{
		Location: ctx.CurrentLocation(),
		Path:     ctx.Path(),
		Message:  fmt.Sprintf("Expected %s", ctx.Matcher().Label()),
	}
}
