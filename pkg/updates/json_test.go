package updates

import (
	"testing"
)

func TestParseJSONObject_KeyOrder(t *testing.T) {
	body := []byte(`{"zeta": 1, "alpha": "a", "mid": null}`)

	candidates, err := ParseJSONObject(body)
	if err != nil {
		t.Fatalf("ParseJSONObject() error = %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("ParseJSONObject() returned %d candidates, want 3", len(candidates))
	}
	want := []string{"zeta", "alpha", "mid"}
	for i, name := range want {
		if candidates[i].Name != name {
			t.Errorf("candidate[%d].Name = %q, want %q", i, candidates[i].Name, name)
		}
	}
}

func TestParseJSONObject_NullVsAbsent(t *testing.T) {
	candidates, err := ParseJSONObject([]byte(`{"summary": null}`))
	if err != nil {
		t.Fatalf("ParseJSONObject() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("ParseJSONObject() returned %d candidates, want 1", len(candidates))
	}
	if candidates[0].Name != "summary" || candidates[0].Value != nil {
		t.Errorf("candidate = %+v, want summary with nil value", candidates[0])
	}

	// A key absent from the body produces no candidate at all
	candidates, err = ParseJSONObject([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseJSONObject() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("ParseJSONObject() on empty object returned %d candidates, want 0", len(candidates))
	}
}

func TestParseJSONObject_Numbers(t *testing.T) {
	candidates, err := ParseJSONObject([]byte(`{"duration": 45, "score": 2.5}`))
	if err != nil {
		t.Fatalf("ParseJSONObject() error = %v", err)
	}
	if v, ok := candidates[0].Value.(int64); !ok || v != 45 {
		t.Errorf("duration = %T(%v), want int64(45)", candidates[0].Value, candidates[0].Value)
	}
	if v, ok := candidates[1].Value.(float64); !ok || v != 2.5 {
		t.Errorf("score = %T(%v), want float64(2.5)", candidates[1].Value, candidates[1].Value)
	}
}

func TestParseJSONObject_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"array", `[1, 2]`},
		{"scalar", `"title"`},
		{"truncated", `{"title": `},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSONObject([]byte(tt.body)); err == nil {
				t.Errorf("ParseJSONObject(%q) expected error, got nil", tt.body)
			}
		})
	}
}

func TestParseJSONObject_NestedValues(t *testing.T) {
	candidates, err := ParseJSONObject([]byte(`{"tags": ["a", "b"], "meta": {"k": 1}}`))
	if err != nil {
		t.Fatalf("ParseJSONObject() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("ParseJSONObject() returned %d candidates, want 2", len(candidates))
	}
	if _, ok := candidates[0].Value.([]interface{}); !ok {
		t.Errorf("tags = %T, want []interface{}", candidates[0].Value)
	}
	if _, ok := candidates[1].Value.(map[string]interface{}); !ok {
		t.Errorf("meta = %T, want map[string]interface{}", candidates[1].Value)
	}
}
