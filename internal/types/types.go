// Package types holds small generic helpers for the pointer-heavy SDK models.
package types

// ToPtr returns a pointer to a copy of value.
func ToPtr[T any](value T) *T {
	return &value
}

// GetValue dereferences ptr, falling back to defaultVal for nil.
func GetValue[T any](ptr *T, defaultVal T) T {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}
