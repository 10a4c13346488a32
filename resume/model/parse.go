package model

import (
	"encoding/json"
	"strings"
)

// Parse decodes a model reply. An empty reply returns ErrEmptyResult; anything
// that is not a JSON object of the expected shape returns a *ParseError.
func Parse(raw string) (ResumeRecord, error) {
	if raw == "" {
		return ResumeRecord{}, ErrEmptyResult
	}

	var record ResumeRecord
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &record); err != nil {
		return ResumeRecord{}, &ParseError{Raw: raw, Err: err}
	}
	return record, nil
}

// stripCodeFence removes a surrounding ```json ... ``` markdown fence.
func stripCodeFence(input string) string {
	clean := strings.TrimSpace(input)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimPrefix(clean, "json")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
