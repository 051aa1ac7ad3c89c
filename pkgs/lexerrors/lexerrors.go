// Package lexerrors defines the structured error shape shared by every
// component of the lexer pipeline, and the Verdict sum type components
// return instead of a plain Go error.
package lexerrors

import "fmt"

// Kind classifies a LexError, matching the strict three-way taxonomy
// from the writeup: a component either accepts, rejects, or has detected
// a bug in its own modelling of the writeup (a model error).
type Kind string

const (
	// KindReject means the input is not in the language. Rejections are
	// an expected, well-formed outcome, not a bug.
	KindReject Kind = "REJECT"

	// KindModelError means this lexer found an inconsistency in its own
	// rules or infrastructure: a PEG-style nonterminal participated zero
	// or multiple times when exactly one was required, and so on.
	KindModelError Kind = "MODEL_ERROR"
)

// LexError is a structured error with a Kind, a human-readable Message,
// an optional wrapped Cause, and free-form Context for diagnostics.
type LexError struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]any
}

func (e *LexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *LexError) Unwrap() error {
	return e.Cause
}

// New creates a new LexError of the given kind.
func New(kind Kind, message string) *LexError {
	return &LexError{Kind: kind, Message: message, Context: make(map[string]any)}
}

// Wrap creates a new LexError of the given kind, wrapping cause.
func Wrap(kind Kind, message string, cause error) *LexError {
	return &LexError{Kind: kind, Message: message, Cause: cause, Context: make(map[string]any)}
}

// WithContext attaches a diagnostic key/value pair and returns the receiver.
func (e *LexError) WithContext(key string, value any) *LexError {
	e.Context[key] = value
	return e
}

// Reject builds a KindReject LexError.
func Reject(format string, args ...any) *LexError {
	return New(KindReject, fmt.Sprintf(format, args...))
}

// ModelError builds a KindModelError LexError.
func ModelError(format string, args ...any) *LexError {
	return New(KindModelError, fmt.Sprintf(format, args...))
}

// Is reports whether err is a *LexError of the given kind.
func Is(err error, kind Kind) bool {
	le, ok := err.(*LexError)
	return ok && le.Kind == kind
}
