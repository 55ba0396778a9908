package types

// Unique returns the distinct items in order of first appearance.
func Unique[T comparable](items []T) []T {
	return UniqueComparable(items, func(v T) T { return v })
}

// UniqueComparable removes items whose key, as computed by keyFn, was already
// seen. The first occurrence wins.
func UniqueComparable[T any, K comparable](items []T, keyFn func(T) K) []T {
	res := make([]T, 0, len(items))
	seen := make(map[K]struct{}, len(items))
	for _, v := range items {
		k := keyFn(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return res
}
