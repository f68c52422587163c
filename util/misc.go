package util

// Swap exchanges two elements of s in place.
func Swap[T any](s []T, i int, j int) {
	s[i], s[j] = s[j], s[i]
}
