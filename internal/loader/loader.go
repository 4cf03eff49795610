// Package loader reads tabular data from JSON, YAML, TOML, NDJSON and CSV
// sources and normalizes it into a header row plus data rows ready for
// rendering.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dataset is the normalized form of any supported input: an optional header
// and the data rows. Row cells keep their decoded Go values (strings,
// numbers, bools, nested maps/slices) so the renderer can format them.
type Dataset struct {
	Headers []string
	Rows    [][]any
}

// Documents returns the rows as generic documents keyed by header name,
// suitable for expression filtering. Rows without a header column keep
// positional keys ("c0", "c1", ...).
func (d *Dataset) Documents() []map[string]any {
	docs := make([]map[string]any, 0, len(d.Rows))
	for _, row := range d.Rows {
		doc := make(map[string]any, len(row))
		for i, v := range row {
			key := fmt.Sprintf("c%d", i)
			if i < len(d.Headers) {
				key = d.Headers[i]
			}
			doc[key] = v
		}
		docs = append(docs, doc)
	}
	return docs
}

// Filter keeps only the rows whose index is marked true in keep. The keep
// slice is aligned with Rows; shorter slices drop the tail.
func (d *Dataset) Filter(keep []bool) {
	filtered := d.Rows[:0]
	for i, row := range d.Rows {
		if i < len(keep) && keep[i] {
			filtered = append(filtered, row)
		}
	}
	d.Rows = filtered
}

// LoadFile reads and parses path. An empty format means detection, first by
// file extension and then by content.
func LoadFile(path, format string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if format == "" {
		format = formatFromExtension(path)
	}
	return Load(string(data), format)
}

// LoadReader reads all of r and parses it. Used for stdin, where there is
// no file extension to go by.
func LoadReader(r io.Reader, format string) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Load(string(data), format)
}

// Load parses input in the named format ("json", "yaml", "toml", "csv",
// "ndjson") or detects the format when it is empty.
func Load(input, format string) (*Dataset, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	switch format {
	case "json":
		return parseThenTabulate(input, parseJSON)
	case "yaml", "yml":
		return parseThenTabulate(input, parseYAML)
	case "toml":
		return parseThenTabulate(input, parseTOML)
	case "ndjson", "jsonl":
		return parseThenTabulate(input, parseNDJSON)
	case "csv":
		return parseCSV(input)
	case "":
		return detect(input)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func parseThenTabulate(input string, parse func(string) ([]any, error)) (*Dataset, error) {
	docs, err := parse(input)
	if err != nil {
		return nil, err
	}
	return tabulate(docs)
}

// detect routes input to the right parser by inspecting its shape. The
// order matters: multi-document YAML and NDJSON are the most restrictive,
// TOML section headers would otherwise read as JSON arrays, and plain YAML
// accepts nearly anything so it goes last.
func detect(input string) (*Dataset, error) {
	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return parseThenTabulate(input, parseYAML)
	}

	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return parseThenTabulate(input, parseNDJSON)
	}

	if isLikelyTOML(input) {
		return parseThenTabulate(input, parseTOML)
	}

	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return parseThenTabulate(input, parseJSON)
	}

	if isLikelyCSV(lines) {
		return parseCSV(input)
	}

	return parseThenTabulate(input, parseYAML)
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".csv":
		return "csv"
	case ".ndjson", ".jsonl":
		return "ndjson"
	default:
		return ""
	}
}

// parseJSON parses a single JSON object or array into a document list.
// A top-level array contributes one document per element.
func parseJSON(input string) ([]any, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if arr, ok := data.([]any); ok {
		return arr, nil
	}
	return []any{data}, nil
}

// parseYAML parses one or more YAML documents (separated by ---).
func parseYAML(input string) ([]any, error) {
	var docs []any
	decoder := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if doc == nil {
			continue
		}
		if arr, ok := doc.([]any); ok && len(docs) == 0 {
			docs = append(docs, arr...)
			continue
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents found in YAML input")
	}
	return docs, nil
}

func parseTOML(input string) ([]any, error) {
	var data any
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []any{data}, nil
}

// parseNDJSON parses newline-delimited JSON, one document per line. Lines
// that fail to parse are kept as plain strings.
func parseNDJSON(input string) ([]any, error) {
	lines := strings.Split(input, "\n")
	docs := make([]any, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			docs = append(docs, line)
			continue
		}
		docs = append(docs, obj)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no data found in input")
	}
	return docs, nil
}

// parseCSV reads comma-separated records. The first record is the header.
func parseCSV(input string) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(input))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no data found in input")
	}

	ds := &Dataset{Headers: records[0]}
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, field := range record {
			row[i] = field
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// isLikelyNDJSON reports whether the lines look like newline-delimited
// JSON: more than one non-empty line, a majority of them starting with
// '{' or '['. The majority requirement keeps YAML list files from being
// misclassified.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	return nonEmptyCount > 1 && jsonCount > nonEmptyCount/2
}

// TOML section headers ([name], [[array]], dotted and quoted keys) are
// distinct from JSON arrays like [1, 2, 3], which contain commas or spaces
// outside quotes.
var (
	tomlSectionPattern  = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// isLikelyTOML reports whether the input looks like TOML: any section
// header, or a majority of lines in key = value form (not key: value,
// which is YAML).
func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}

// isLikelyCSV reports whether every non-empty line carries the same
// nonzero comma count.
func isLikelyCSV(lines []string) bool {
	commas := -1
	nonEmpty := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		n := strings.Count(trimmed, ",")
		if n == 0 {
			return false
		}
		if commas == -1 {
			commas = n
			continue
		}
		if n != commas {
			return false
		}
	}
	return nonEmpty > 1
}
