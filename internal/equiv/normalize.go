// Package equiv normalizes decoded API responses into a shared shape and
// compares them, classifying every divergence between the two transports.
package equiv

import (
	"fmt"
	"sort"
	"strconv"
)

// NormalizeID reduces any transport-native identifier to its string form.
// Numeric ids become their decimal rendering; opaque ids pass through. An
// absent or empty id is an error, never silently tolerated.
func NormalizeID(v interface{}) (string, error) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", fmt.Errorf("empty id")
		}
		return id, nil
	case float64:
		return strconv.FormatInt(int64(id), 10), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case int:
		return strconv.Itoa(id), nil
	}
	return "", fmt.Errorf("id missing or of unexpected type %T", v)
}

// NormalizeUser returns a copy of a decoded user object with its identifier
// reduced to string form.
func NormalizeUser(raw map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	id, err := NormalizeID(raw["id"])
	if err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	out["id"] = id
	return out, nil
}

// NormalizeTask normalizes both the task's own id and its owner reference.
func NormalizeTask(raw map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	id, err := NormalizeID(raw["id"])
	if err != nil {
		return nil, fmt.Errorf("task: %w", err)
	}
	out["id"] = id

	if owner, ok := raw["userId"]; ok {
		ownerID, err := NormalizeID(owner)
		if err != nil {
			return nil, fmt.Errorf("task owner: %w", err)
		}
		out["userId"] = ownerID
	}
	return out, nil
}

// NormalizeTaskList normalizes every element and orders the result by title,
// removing any transport-specific ordering.
func NormalizeTaskList(raw []map[string]interface{}) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(raw))
	for i, item := range raw {
		normalized, err := NormalizeTask(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, normalized)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i]["title"].(string)
		b, _ := out[j]["title"].(string)
		return a < b
	})
	return out, nil
}
