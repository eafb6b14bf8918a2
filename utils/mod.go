package utils

// FindIndex returns the position of the first item equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Map[T, U any](slice []T, f func(T) U) []U {
	if slice == nil {
		return nil
	}
	mapped := make([]U, len(slice))
	for i, v := range slice {
		mapped[i] = f(v)
	}
	return mapped
}
