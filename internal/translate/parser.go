package translate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseCatalog extracts the translated catalog from the model's response
// and checks key parity against the input. Responses are often wrapped in
// markdown code fences; strip them before unmarshalling.
func parseCatalog(response string, want Catalog) (Catalog, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	var got map[string]string
	if err := json.Unmarshal([]byte(response), &got); err != nil {
		return nil, &Error{Reason: fmt.Sprintf("response is not a JSON object (%.120s)", response), Err: err}
	}

	// Same shape or nothing: a missing or extra key means the model drifted
	// and the existing catalog must stay untouched.
	for k := range want {
		v, ok := got[k]
		if !ok {
			return nil, &Error{Reason: fmt.Sprintf("response is missing key %q", k)}
		}
		if strings.TrimSpace(v) == "" {
			return nil, &Error{Reason: fmt.Sprintf("response has empty value for key %q", k)}
		}
	}
	for k := range got {
		if _, ok := want[k]; !ok {
			return nil, &Error{Reason: fmt.Sprintf("response has unexpected key %q", k)}
		}
	}

	out := make(Catalog, len(got))
	for k, v := range got {
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
