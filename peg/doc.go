// Package peg implements a recursive-descent matching engine for parsing
// expression grammars.
//
// A grammar is a directed, potentially cyclic graph of Matcher values,
// composed with the usual PEG operators: Sequence, FirstOf (ordered
// choice), ZeroOrMore, OneOrMore, Optional, the syntactic predicates Test
// and TestNot, the terminals Ch, CharRange, AnyOf, Str and Any, semantic
// actions (Do), and Proxy indirections for recursive rules.
//
// Parsing starts with Parser.Parse, which wraps the root rule in a root
// MatcherContext and runs it. Each matcher that needs to invoke a child
// binds its context's reusable sub-frame to the child matcher and calls
// RunMatcher on it. The driver commits cursor progress to the parent only
// on success, so a failed alternative never moves the caller's cursor and
// ordered choice needs no explicit rollback. Successful matchers build
// parse-tree nodes out of the child nodes their frame collected.
//
// Rules can be decorated: Label names a rule, AsLeaf suppresses the parse
// tree below it, Suppress drops the rule's own node and hands its
// children to the enclosing rule.
//
// A sequence can carry a cut point (SequenceCut). Once the cut child has
// matched, failures of the remaining children are routed through the
// parser's ParseErrorHandler, which may repair the input by skipping
// characters or injecting virtual ones and report the match as recovered.
// The handler derives its resynchronisation alphabet from the follower
// sets of the live context stack (MatcherContext.CurrentFollowerChars).
//
// Errors come in three kinds. A plain match failure is normal control
// flow and is never logged. A ParseError (a failed action, or a failure
// under enforcement) is appended to the result's error list and the parse
// continues. A *RuntimeError is a fatal fault: a grammar defect detected
// at run time, or an unexpected panic out of matcher or action code; it
// unwinds to Parse's caller.
//
// The engine performs no memoization and does not support left-recursive
// grammars: a left-recursive rule recurses without consuming input until
// the stack overflows. Matcher graphs are immutable after construction
// and may be shared by concurrent parses; each parse owns its own context
// chain.
package peg
