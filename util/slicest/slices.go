// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the TUI layout
// code.
package slicest

// Reduce

// Reduce reduces slice S to type U, starting from U's zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD reduces slice S to type U using explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Map

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// Filter

// Filter returns the elements of s for which keep is true, in order.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var out S
	for _, t := range s {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Index

// IndexFunc returns the index of the first element matching fn, or -1.
func IndexFunc[T any, S ~[]T](s S, fn func(T) bool) int {
	for i, t := range s {
		if fn(t) {
			return i
		}
	}
	return -1
}
