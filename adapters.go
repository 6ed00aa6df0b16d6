package stateiter

import (
	"cmp"
	"slices"
)

type Pair[First, Second any] struct {
	First  First
	Second Second
}

func NewPair[First, Second any](first First, second Second) Pair[First, Second] {
	return Pair[First, Second]{First: first, Second: second}
}

// FromSlice returns a sequence over the elements of slice. The slice is read
// lazily, so later writes to it show up in items not yet pulled.
func FromSlice[T any](slice []T) *Sequence[T] {
	if len(slice) == 0 {
		return Empty[T]()
	}
	return New(slice, func(rest []T) ([]T, bool, T) {
		return rest[1:], len(rest) > 1, rest[0]
	})
}

// FromMap returns a sequence over the entries of m, ordered by key.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Sequence[Pair[K, V]] {
	items := make([]Pair[K, V], 0, len(m))
	for key, value := range m {
		items = append(items, NewPair(key, value))
	}
	slices.SortFunc(items, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.First, b.First)
	})
	return FromSlice(items)
}

// ToSlice drains gen. It does not return on an infinite generator.
func ToSlice[T any](gen Generator[T]) (slice []T) {
	for gen.Next() {
		slice = append(slice, gen.Value())
	}
	return
}

// Take pulls at most n items from gen.
func Take[T any](gen Generator[T], n int) (slice []T) {
	for i := 0; i < n && gen.Next(); i++ {
		slice = append(slice, gen.Value())
	}
	return
}
