package updates

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Candidate is one key/value entry from an update request body, in the order
// the caller sent it. Values decode as interface{}: JSON null becomes a nil
// Value, while keys missing from the body produce no Candidate at all.
type Candidate struct {
	Name  string
	Value interface{}
}

// ParseJSONObject decodes a JSON object body into ordered candidates.
// encoding/json maps discard key order, so this walks the token stream
// instead.
func ParseJSONObject(body []byte) ([]Candidate, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode update body: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("update body must be a JSON object")
	}

	var candidates []Candidate
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode update body: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in update body", keyTok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", key, err)
		}
		candidates = append(candidates, Candidate{Name: key, Value: normalize(value)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode update body: %w", err)
	}
	return candidates, nil
}

// normalize converts json.Number values into plain Go numbers so stores can
// bind them as parameters without caring about the decoder mode.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	default:
		return v
	}
}
