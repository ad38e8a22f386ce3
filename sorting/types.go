// Package sorting provides tunable options and error definitions for the
// distribution sorts.
package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors for sorting operations.
var (
	// ErrNegativeValue indicates Radix input containing a negative integer.
	ErrNegativeValue = errors.New("sorting: negative value in radix input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// DefaultBucketCount is the bucket count used when no option overrides it.
const DefaultBucketCount = 10

// Option configures distribution-sort behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*Options)

// Options holds parameters for the distribution sorts.
type Options struct {
	// BucketCount is the number of buckets used by Bucket.
	BucketCount int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with DefaultBucketCount buckets.
func DefaultOptions() Options {
	return Options{
		BucketCount: DefaultBucketCount,
		err:         nil,
	}
}

// WithBucketCount sets the number of buckets for Bucket.
// b <= 0 is an invalid option → ErrOptionViolation.
func WithBucketCount(b int) Option {
	return func(o *Options) {
		if b <= 0 {
			o.err = fmt.Errorf("%w: BucketCount must be positive (%d)", ErrOptionViolation, b)
			return
		}
		o.BucketCount = b
	}
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
