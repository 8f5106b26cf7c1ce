package utils

// Value dereferences v, returning the zero value for a nil pointer.
// Optional JSON fields arrive as pointers; this keeps callers nil-safe.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func Ptr[T any](v T) *T {
	return &v
}
