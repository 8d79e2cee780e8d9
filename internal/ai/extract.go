package ai

import "strings"

// ExtractJSON removes the code fences models like to wrap JSON in.
// When a fence is present, only the text between the first ```json or ```
// marker and the next ``` is kept, so chatter around the block is dropped.
// Stray backticks left in the payload are removed last.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.Index(raw, "```"); idx != -1 {
		raw = strings.TrimPrefix(raw[idx+len("```"):], "json")
		if end := strings.Index(raw, "```"); end != -1 {
			raw = raw[:end]
		}
	}
	raw = strings.ReplaceAll(raw, "`", "")
	return strings.TrimSpace(raw)
}
