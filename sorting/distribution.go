package sorting

import "fmt"

// Bucket sorts xs in place by scattering values into equal-width buckets
// over [min, max], insertion-sorting each bucket, and gathering them back.
// The bucket count defaults to DefaultBucketCount; tune with
// WithBucketCount.
func Bucket(xs []int, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if len(xs) < 2 {
		return nil
	}

	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return nil
	}

	// width of each bucket's value range, rounded up
	span := hi - lo + 1
	width := (span + o.BucketCount - 1) / o.BucketCount

	buckets := make([][]int, o.BucketCount)
	for _, v := range xs {
		b := (v - lo) / width
		buckets[b] = append(buckets[b], v)
	}

	k := 0
	for _, b := range buckets {
		Insertion(b)
		k += copy(xs[k:], b)
	}

	return nil
}

// Radix sorts xs in place with least-significant-digit base-10 counting
// passes. Input must be non-negative; a negative value fails with
// ErrNegativeValue before any element moves.
func Radix(xs []int) error {
	maxVal := 0
	for i, v := range xs {
		if v < 0 {
			return fmt.Errorf("%w: %d at index %d", ErrNegativeValue, v, i)
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(xs) < 2 {
		return nil
	}

	buf := make([]int, len(xs))
	for digit := 1; maxVal/digit > 0; digit *= 10 {
		var count [10]int
		for _, v := range xs {
			count[(v/digit)%10]++
		}
		// prefix sums turn counts into end offsets
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		// stable gather, walking backwards
		for i := len(xs) - 1; i >= 0; i-- {
			d := (xs[i] / digit) % 10
			count[d]--
			buf[count[d]] = xs[i]
		}
		copy(xs, buf)
	}

	return nil
}
