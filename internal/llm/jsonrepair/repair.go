// Package jsonrepair turns almost-JSON model output into parseable JSON.
// Models asked for strict JSON still emit fenced code blocks, drop commas
// between elements, or wrap the object in prose; the pipeline here undoes
// those specific failures and nothing more.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnrepairable indicates the output could not be coerced into JSON.
var ErrUnrepairable = errors.New("jsonrepair: output not repairable")

var (
	// "a" "b"        -> "a", "b"   (missing comma between array strings)
	reAdjacentStrings = regexp.MustCompile(`"(\s+)"`)
	// "a" "key":     -> "a", "key":  (missing comma before an object key)
	reStringThenKey = regexp.MustCompile(`"(\s+)("\w+"\s*:)`)
)

// Repair runs the full pipeline on raw model output and returns valid JSON
// bytes, or ErrUnrepairable. The steps, in order: strip a fenced code
// marker, re-insert missing commas, parse; on failure retry on the
// first-{-to-last-} substring to tolerate surrounding prose.
func Repair(raw string) ([]byte, error) {
	text := StripFences(raw)
	text = InsertMissingCommas(text)

	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}

	inner, ok := objectSubstring(text)
	if ok && json.Valid([]byte(inner)) {
		return []byte(inner), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnrepairable, truncateForError(raw))
}

// Parse repairs raw output and unmarshals it into dst.
func Parse(raw string, dst any) error {
	fixed, err := Repair(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(fixed, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrUnrepairable, err)
	}
	return nil
}

// StripFences removes a leading/trailing markdown code fence if present.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// InsertMissingCommas re-inserts the commas models most often drop: between
// two adjacent quoted strings, and between a quoted string and a following
// quoted key.
func InsertMissingCommas(text string) string {
	text = reStringThenKey.ReplaceAllString(text, `", $2`)
	text = reAdjacentStrings.ReplaceAllString(text, `", "`)
	return text
}

// objectSubstring slices text from the first '{' to the last '}'.
func objectSubstring(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func truncateForError(raw string) string {
	const max = 120
	raw = strings.TrimSpace(raw)
	if len(raw) <= max {
		return raw
	}
	return raw[:max] + "..."
}
