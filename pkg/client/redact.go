package client

import (
	"encoding/json"
	"net/http"
)

const redactedPlaceholder = "[REDACTED]"

// redactHeaders renders a header map safe for TRACE-level logging:
// Authorization is always rendered as "Bearer [REDACTED]" per spec
// §4.2. Redaction is a correctness requirement, not formatting.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		if k == "Authorization" {
			out[k] = "Bearer " + redactedPlaceholder
			continue
		}
		out[k] = v[0]
	}
	return out
}

// redactBody best-effort redacts the credential-bearing top-level fields
// "api_key", "apiKey", "token", and "challenge_id" from a JSON object
// body before it is logged at TRACE level. Non-JSON or non-matching
// bodies pass through unchanged.
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var generic map[string]any
	if err := json.Unmarshal(body, &generic); err != nil {
		return string(body)
	}
	changed := false
	for _, key := range []string{"api_key", "apiKey", "token", "challenge_id"} {
		if _, ok := generic[key]; ok {
			generic[key] = redactedPlaceholder
			changed = true
		}
	}
	if !changed {
		return string(body)
	}
	out, err := json.Marshal(generic)
	if err != nil {
		return string(body)
	}
	return string(out)
}
