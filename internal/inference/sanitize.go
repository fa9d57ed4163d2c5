package inference

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
)

// stripCodeFences removes Markdown code-fence wrappers the model sometimes
// adds despite being told not to, and narrows the text down to the JSON
// array payload. Applying it to already-clean text is a no-op.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(s)
	}

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}

	// If there is still junk around the array, keep only the span from the
	// first '[' to the last ']'.
	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

// decodeCandidates parses sanitized model text into loose candidate maps.
// Numbers are kept as json.Number so amounts can later be converted through
// their string form without picking up binary floating-point noise.
//
// Model text is not guaranteed well-formed; this is the one place that
// absorbs that. Malformed JSON or a non-array value logs the problem and
// yields an empty slice, so the request degrades to "no subscriptions
// found" instead of failing.
func decodeCandidates(raw string, log zerolog.Logger) []map[string]any {
	clean := stripCodeFences(raw)

	dec := json.NewDecoder(strings.NewReader(clean))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		log.Error().Err(err).Str("response", clean).Msg("Failed to decode model response as JSON")
		return nil
	}

	arr, ok := parsed.([]any)
	if !ok {
		log.Error().Type("got", parsed).Msg("Model response is not a JSON array")
		return nil
	}

	candidates := make([]map[string]any, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Warn().Int("index", i).Type("got", item).Msg("Skipping non-object element in model response")
			continue
		}
		candidates = append(candidates, obj)
	}
	return candidates
}
