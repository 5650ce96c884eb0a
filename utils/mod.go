package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MoveToFront shifts item to index 0 keeping the relative order of the others.
// It returns false, leaving slice untouched, when item is not present.
func MoveToFront[T comparable](slice []T, item T) bool {
	i := FindIndex(slice, item)
	if i < 0 {
		return false
	}
	copy(slice[1:i+1], slice[:i])
	slice[0] = item
	return true
}
