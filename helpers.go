package attrstyle

import "golang.org/x/exp/constraints"

// Widen converts an option value to the float64 precision of paragraph and
// geometry fields
func Widen[F constraints.Float](v F) float64 {
	return float64(v)
}

// MapPairs rewrites every key and value of m with fn into a new map. If fn
// maps two keys to the same new key, which value survives is unspecified
func MapPairs[K1, K2 comparable, V1, V2 any](m map[K1]V1, fn func(K1, V1) (K2, V2)) map[K2]V2 {
	result := make(map[K2]V2, len(m))
	for k, v := range m {
		nk, nv := fn(k, v)
		result[nk] = nv
	}
	return result
}
