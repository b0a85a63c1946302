package equiv

import (
	"fmt"
	"reflect"
)

// DivergenceKind classifies one observed difference between two responses.
type DivergenceKind string

const (
	// DivergenceExpected marks a difference on a whitelisted key; these are
	// the documented transport-native fields and do not break equivalence.
	DivergenceExpected DivergenceKind = "expected"
	// DivergenceMissingKey marks a key present on one side only.
	DivergenceMissingKey DivergenceKind = "missing-key"
	// DivergenceValue marks differing values under a common key.
	DivergenceValue DivergenceKind = "value"
	// DivergenceLength marks lists of different size.
	DivergenceLength DivergenceKind = "length"
)

type Divergence struct {
	Kind   DivergenceKind
	Path   string
	Detail string
}

// Report collects every divergence found by a comparison.
type Report struct {
	Divergences []Divergence
}

// Equivalent is true when nothing beyond expected divergences remains.
func (r *Report) Equivalent() bool {
	for _, d := range r.Divergences {
		if d.Kind != DivergenceExpected {
			return false
		}
	}
	return true
}

func (r *Report) add(kind DivergenceKind, path, format string, args ...interface{}) {
	r.Divergences = append(r.Divergences, Divergence{
		Kind:   kind,
		Path:   path,
		Detail: fmt.Sprintf(format, args...),
	})
}

// Compare walks two normalized objects. Key presence is checked first:
// a key found on only one side is a missing-key divergence unless
// whitelisted. Common keys are then compared by value, with whitelisted
// keys allowed to differ. Nested objects and lists recurse.
func Compare(a, b map[string]interface{}, whitelist map[string]bool) *Report {
	report := &Report{}
	compareObjects(report, "", a, b, whitelist)
	return report
}

// CompareLists compares two normalized lists: first the lengths, then each
// aligned pair of items.
func CompareLists(a, b []map[string]interface{}, whitelist map[string]bool) *Report {
	report := &Report{}
	if len(a) != len(b) {
		report.add(DivergenceLength, "", "lengths differ: %d vs %d", len(a), len(b))
		return report
	}
	for i := range a {
		compareObjects(report, fmt.Sprintf("[%d]", i), a[i], b[i], whitelist)
	}
	return report
}

func compareObjects(report *Report, path string, a, b map[string]interface{}, whitelist map[string]bool) {
	for key := range a {
		if _, ok := b[key]; !ok {
			kind := DivergenceMissingKey
			if whitelist[key] {
				kind = DivergenceExpected
			}
			report.add(kind, join(path, key), "only on first side")
		}
	}
	for key := range b {
		if _, ok := a[key]; !ok {
			kind := DivergenceMissingKey
			if whitelist[key] {
				kind = DivergenceExpected
			}
			report.add(kind, join(path, key), "only on second side")
		}
	}

	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			continue
		}
		compareValues(report, join(path, key), key, av, bv, whitelist)
	}
}

func compareValues(report *Report, path, key string, av, bv interface{}, whitelist map[string]bool) {
	switch a := av.(type) {
	case map[string]interface{}:
		b, ok := bv.(map[string]interface{})
		if !ok {
			report.add(DivergenceValue, path, "object vs %T", bv)
			return
		}
		compareObjects(report, path, a, b, whitelist)
	case []interface{}:
		b, ok := bv.([]interface{})
		if !ok {
			report.add(DivergenceValue, path, "list vs %T", bv)
			return
		}
		if len(a) != len(b) {
			report.add(DivergenceLength, path, "lengths differ: %d vs %d", len(a), len(b))
			return
		}
		for i := range a {
			compareValues(report, fmt.Sprintf("%s[%d]", path, i), key, a[i], b[i], whitelist)
		}
	default:
		if reflect.DeepEqual(av, bv) {
			return
		}
		if whitelist[key] {
			report.add(DivergenceExpected, path, "%v vs %v", av, bv)
			return
		}
		report.add(DivergenceValue, path, "%v vs %v", av, bv)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
