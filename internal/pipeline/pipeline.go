// Package pipeline provides lazy operators over iter.Seq. Every operator
// returns a sequence that can be ranged over any number of times; nothing is
// pulled from the source until the result is consumed.
package pipeline

import (
	"cmp"
	"iter"
	"slices"
)

func FromSlice[T any](s []T) iter.Seq[T] {
	return slices.Values(s)
}

func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// MapErr maps until fn fails. The error is stored in *errp and the
// sequence ends early.
func MapErr[T, U any](seq iter.Seq[T], fn func(T) (U, error), errp *error) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			u, err := fn(v)
			if err != nil {
				*errp = err
				return
			}
			if !yield(u) {
				return
			}
		}
	}
}

func FlatMap[T, U any](seq iter.Seq[T], fn func(T) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			for u := range fn(v) {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Peek calls fn on each element as it flows past.
func Peek[T any](seq iter.Seq[T], fn func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Limit yields at most n elements and stops pulling from seq once it has.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		seen := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			seen++
			if seen >= n {
				return
			}
		}
	}
}

// TakeWhile yields elements while keep holds and stops pulling at the first
// one that fails.
func TakeWhile[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !keep(v) || !yield(v) {
				return
			}
		}
	}
}

// Distinct drops repeated elements, keeping the first occurrence.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Sorted buffers the sequence and yields it in ascending order.
func Sorted[T cmp.Ordered](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Sorted(seq) {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterate yields seed, next(seed), next(next(seed)), ... without end.
func Iterate[T any](seed T, next func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// RangeClosed yields from..to inclusive.
func RangeClosed(from, to int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i <= to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Collect never returns nil, so empty results compare equal to []T{}.
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// MaxBy returns the element with the greatest key. Ties keep the earliest.
func MaxBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for v := range seq {
		k := key(v)
		if !found || k > bestKey {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}

// CountBy groups by key and counts each group.
func CountBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K]int64 {
	out := make(map[K]int64)
	for v := range seq {
		out[key(v)]++
	}
	return out
}

func Identity[T any](v T) T { return v }
