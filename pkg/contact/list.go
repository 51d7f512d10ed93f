package contact

// Append returns a new list with entry added at the end.
func Append[E any](list []E, entry E) []E {
	out := make([]E, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, entry)
	return out
}

// Remove returns a new list without the entry at index i. A list that is
// already at the minimum length of one is returned unchanged; the silent
// no-op is the mechanism that keeps every repeatable list non-empty, so
// callers never have to guard the floor themselves. Out-of-range indices are
// likewise ignored.
func Remove[E any](list []E, i int) []E {
	if len(list) <= 1 || i < 0 || i >= len(list) {
		return list
	}
	out := make([]E, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out
}

// UpdateAt returns a new list with the entry at index i replaced by
// mutate(entry). Out-of-range indices return the input unchanged.
func UpdateAt[E any](list []E, i int, mutate func(E) E) []E {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]E, len(list))
	copy(out, list)
	out[i] = mutate(out[i])
	return out
}
