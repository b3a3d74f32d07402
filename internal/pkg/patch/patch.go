package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// NonBlank returns the trimmed value pointed to by ptr, or fallback when it is nil or blank.
func NonBlank(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	if v := strings.TrimSpace(*ptr); v != "" {
		return v
	}
	return fallback
}
