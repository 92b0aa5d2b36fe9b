package translate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Results shorter than this are assumed to be parse noise, not translations.
const minTranslationLen = 10

var translationField = regexp.MustCompile(`"translation"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// extractTranslation pulls the translation out of the model's answer. Models
// wrap the JSON in prose or code fences often enough that strict decoding is
// only the first attempt: it falls back to a field regexp and finally to a
// raw substring scan.
func extractTranslation(out string) (string, bool) {
	out = strings.TrimSpace(out)

	var payload struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err == nil {
		return accept(payload.Translation)
	}

	if m := translationField.FindStringSubmatch(out); m != nil {
		raw := m[1]
		if unquoted, err := strconv.Unquote(`"` + raw + `"`); err == nil {
			raw = unquoted
		}
		return accept(raw)
	}

	// Last resort: take everything after the field name up to the closing
	// quote or brace.
	if i := strings.Index(out, `"translation"`); i >= 0 {
		rest := out[i+len(`"translation"`):]
		rest = strings.TrimLeft(rest, " \t\n:")
		rest = strings.TrimPrefix(rest, `"`)
		if j := strings.LastIndexAny(rest, `"}`); j > 0 {
			rest = rest[:j]
		}
		return accept(strings.TrimSpace(rest))
	}
	return "", false
}

func accept(s string) (string, bool) {
	if len(s) < minTranslationLen {
		return "", false
	}
	return s, true
}
