package ptr

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for "".
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
