package builder

import "fmt"

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) int64

// DefaultIDFn maps idx to itself, e.g. 0→0, 42→42.
func DefaultIDFn(idx int) int64 {
	return int64(idx)
}

// OffsetIDFn returns an IDFn that shifts every index by base, e.g. base=1000
// yields 1000, 1001, ... Useful to mimic sparse map node ids.
func OffsetIDFn(base int64) IDFn {
	return func(idx int) int64 {
		return base + int64(idx)
	}
}

// StrideIDFn returns an IDFn yielding base, base+step, base+2·step, ...
// Panics if step ≤ 0 (ids would collide or invert order).
func StrideIDFn(base, step int64) IDFn {
	if step <= 0 {
		panic(fmt.Sprintf("StrideIDFn: step must be > 0, got %d", step))
	}

	return func(idx int) int64 {
		return base + int64(idx)*step
	}
}
