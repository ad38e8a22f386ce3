// Package expr provides tunable options and error definitions for the
// notation-conversion engine and the postfix evaluator.
package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion and evaluation.
var (
	// ErrMalformedExpression indicates unmatched brackets, an operator with
	// too few operands, or leftover stack entries after a full scan.
	ErrMalformedExpression = errors.New("expr: malformed expression")

	// ErrInvalidPostfix indicates stack underflow or leftover entries while
	// reducing a postfix expression.
	ErrInvalidPostfix = errors.New("expr: invalid postfix expression")

	// ErrInvalidPrefix indicates stack underflow or leftover entries while
	// reducing a prefix expression.
	ErrInvalidPrefix = errors.New("expr: invalid prefix expression")

	// ErrDivisionByZero is returned by EvaluatePostfix when a divisor is zero.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrInvalidOperator is returned by EvaluatePostfix when it meets a byte
	// that is neither a digit nor a recognized operator.
	ErrInvalidOperator = errors.New("expr: invalid operator")

	// ErrInputTooLong indicates the expression exceeds the configured
	// maximum length.
	ErrInputTooLong = errors.New("expr: expression exceeds maximum length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("expr: invalid option supplied")
)

// DefaultMaxLength bounds expression input when no option overrides it.
const DefaultMaxLength = 100

// Option configures conversion and evaluation behavior via functional
// arguments. If an Option is invalid (e.g. negative length), it is recorded
// internally and surfaced as ErrOptionViolation when the call is invoked.
type Option func(*Options)

// Options holds parameters shared by all conversion and evaluation calls.
type Options struct {
	// MaxLength, if > 0, bounds the input length.
	// A value of 0 explicitly disables the limit.
	MaxLength int

	// Strict rejects input bytes that are not alphanumeric, an operator,
	// or a bracket. When false (the default), any unclassified byte passes
	// through as an operand.
	Strict bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - MaxLength == DefaultMaxLength (100)
//   - lenient operand handling (Strict == false)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Strict:    false,
		err:       nil,
	}
}

// WithMaxLength bounds the accepted input length.
//
//	n > 0:  inputs longer than n bytes fail with ErrInputTooLong
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxLength(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxLength = 0
		default:
			o.MaxLength = n
		}
	}
}

// WithStrictOperands rejects any input byte outside the supported alphabet
// (alphanumerics, the five operators, and parentheses) with
// ErrMalformedExpression, instead of passing it through as an operand.
func WithStrictOperands() Option {
	return func(o *Options) { o.Strict = true }
}

// buildOptions folds opts over the defaults and surfaces any recorded
// option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// checkInput validates length and, in strict mode, the input alphabet.
func (o *Options) checkInput(s string) error {
	if o.MaxLength > 0 && len(s) > o.MaxLength {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLong, len(s), o.MaxLength)
	}
	if o.Strict {
		for i := 0; i < len(s); i++ {
			if !supportedByte(s[i]) {
				return fmt.Errorf("%w: unsupported byte %q at index %d", ErrMalformedExpression, s[i], i)
			}
		}
	}

	return nil
}
