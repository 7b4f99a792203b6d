package portal

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func Filter[T any](list []T, keep func(T) bool) []T {
	result := make([]T, 0, len(list))
	for _, item := range list {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// IndexBy builds a lookup table from the key function.
func IndexBy[T any, K comparable](list []T, key func(T) K) map[K]T {
	result := make(map[K]T, len(list))
	for _, item := range list {
		result[key(item)] = item
	}
	return result
}
