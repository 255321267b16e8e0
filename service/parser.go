package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studydrop/studydrop-be/types"
)

// stripCodeFence removes a leading ```json (or bare ```) line and a
// trailing ``` marker. Models wrap JSON in markdown fences often enough
// that every structured reply goes through this first.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:strings.LastIndex(cleaned, "```")]
	}
	return strings.TrimSpace(cleaned)
}

// parseModelJSON normalizes a raw model reply and unmarshals it into out.
// Any parse failure maps to ErrMalformedModelOutput.
func parseModelJSON(raw string, out any) error {
	cleaned := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedModelOutput, err)
	}
	return nil
}
