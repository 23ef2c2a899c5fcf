// File: appconf/merge.go
package appconf

// mergeLayers deep-merges configuration layers left to right. For keys
// holding nested maps in both sides the maps merge recursively; for any
// other conflict the rightmost layer wins, including zero values such as
// false and "". Input layers are not modified.
func mergeLayers(layers ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		merged = mergeMaps(merged, layer)
	}
	return merged
}

func mergeMaps(left, right map[string]any) map[string]any {
	result := make(map[string]any, len(left)+len(right))
	for key, value := range left {
		result[key] = value
	}

	for key, value := range right {
		existing, ok := result[key]
		if !ok {
			result[key] = value
			continue
		}

		leftMap, leftIsMap := existing.(map[string]any)
		rightMap, rightIsMap := value.(map[string]any)
		if leftIsMap && rightIsMap {
			result[key] = mergeMaps(leftMap, rightMap)
			continue
		}

		result[key] = value
	}

	return result
}
