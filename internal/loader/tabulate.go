package loader

import (
	"encoding/json"
	"fmt"
	"sort"
)

// tabulate converts a list of parsed documents into a Dataset. The shape of
// the first document decides the layout:
//
//   - maps: headers are the union of keys, sorted within each document
//     and appended in document order, one row per document
//   - slices: positional rows without a header
//   - scalars: a single "value" column
func tabulate(docs []any) (*Dataset, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to tabulate")
	}

	// A single map document becomes a key/value listing rather than a
	// one-row table with one column per key.
	if len(docs) == 1 {
		if m, ok := docs[0].(map[string]any); ok {
			return tabulateKeyValue(m), nil
		}
	}

	allMaps := true
	allSlices := true
	for _, doc := range docs {
		if _, ok := doc.(map[string]any); !ok {
			allMaps = false
		}
		if _, ok := doc.([]any); !ok {
			allSlices = false
		}
	}

	switch {
	case allMaps:
		return tabulateMaps(docs), nil
	case allSlices:
		return tabulateSlices(docs), nil
	default:
		return tabulateScalars(docs), nil
	}
}

func tabulateKeyValue(m map[string]any) *Dataset {
	keys := sortedKeys(m)
	ds := &Dataset{Headers: []string{"key", "value"}}
	for _, k := range keys {
		ds.Rows = append(ds.Rows, []any{k, m[k]})
	}
	return ds
}

func tabulateMaps(docs []any) *Dataset {
	var headers []string
	seen := map[string]bool{}
	for _, doc := range docs {
		m := doc.(map[string]any)
		for _, k := range sortedKeys(m) {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	ds := &Dataset{Headers: headers}
	for _, doc := range docs {
		m := doc.(map[string]any)
		row := make([]any, len(headers))
		for i, k := range headers {
			if v, ok := m[k]; ok {
				row[i] = v
			} else {
				row[i] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

func tabulateSlices(docs []any) *Dataset {
	ds := &Dataset{}
	for _, doc := range docs {
		ds.Rows = append(ds.Rows, doc.([]any))
	}
	return ds
}

func tabulateScalars(docs []any) *Dataset {
	ds := &Dataset{Headers: []string{"value"}}
	for _, doc := range docs {
		ds.Rows = append(ds.Rows, []any{doc})
	}
	return ds
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatCell renders one decoded cell value for display. Nested structures
// are shown as compact JSON so they stay on one wrappable line.
func FormatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
