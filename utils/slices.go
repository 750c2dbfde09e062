package utils

// Map applies fn to every element of s and returns the results in order.
func Map[S ~[]E, E any, R any](s S, fn func(E) R) []R {
	if s == nil {
		return nil
	}

	out := make([]R, len(s))
	for i, e := range s {
		out[i] = fn(e)
	}

	return out
}
