package updates

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuilder_Filter_DropsDisallowed(t *testing.T) {
	b := NewBuilder("title", "platform", "duration")

	fields, err := b.Filter([]Candidate{
		{Name: "title", Value: "Sprint Planning"},
		{Name: "id", Value: "42"},
		{Name: "created_at", Value: "2025-01-01"},
		{Name: "duration", Value: int64(30)},
	})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("Filter() kept %d fields, want 2", len(fields))
	}
	if fields[0].Name != "title" || fields[1].Name != "duration" {
		t.Errorf("Filter() kept %q, %q; want title, duration", fields[0].Name, fields[1].Name)
	}
}

func TestBuilder_Filter_PreservesOrder(t *testing.T) {
	b := NewBuilder("task", "assigned_to", "deadline", "status")

	fields, err := b.Filter([]Candidate{
		{Name: "status", Value: "Completed"},
		{Name: "deadline", Value: "2025-10-25"},
		{Name: "task", Value: "Ship it"},
	})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}

	got := make([]string, len(fields))
	for i, f := range fields {
		got[i] = f.Name
	}
	want := []string{"status", "deadline", "task"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() order = %v, want %v", got, want)
	}
}

func TestBuilder_Filter_NoSurvivors(t *testing.T) {
	b := NewBuilder("title")

	tests := []struct {
		name       string
		candidates []Candidate
	}{
		{"empty_body", nil},
		{"only_disallowed", []Candidate{{Name: "id", Value: "1"}, {Name: "hacker", Value: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Filter(tt.candidates)
			if !errors.Is(err, ErrNoFields) {
				t.Errorf("Filter() error = %v, want ErrNoFields", err)
			}
		})
	}
}

func TestBuilder_Filter_KeepsExplicitNull(t *testing.T) {
	b := NewBuilder("summary", "transcript")

	fields, err := b.Filter([]Candidate{
		{Name: "summary", Value: nil},
	})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("Filter() kept %d fields, want 1", len(fields))
	}
	if fields[0].Value != nil {
		t.Errorf("Filter() value = %v, want nil", fields[0].Value)
	}
}

func TestFieldList_SetClause(t *testing.T) {
	fields := FieldList{
		{Name: "title", Value: "New title"},
		{Name: "summary", Value: nil},
		{Name: "duration", Value: int64(45)},
	}

	clause, args := fields.SetClause()
	want := "title = ?, summary = ?, duration = ?, updated_at = CURRENT_TIMESTAMP"
	if clause != want {
		t.Errorf("SetClause() = %q, want %q", clause, want)
	}
	if len(args) != 3 {
		t.Fatalf("SetClause() returned %d args, want 3", len(args))
	}
	if args[0] != "New title" || args[1] != nil || args[2] != int64(45) {
		t.Errorf("SetClause() args = %v", args)
	}
}

func TestFieldList_Document(t *testing.T) {
	fields := FieldList{
		{Name: "status", Value: "Completed"},
		{Name: "deadline", Value: nil},
	}

	doc := fields.Document()
	if len(doc) != 2 {
		t.Fatalf("Document() has %d entries, want 2", len(doc))
	}
	if doc["status"] != "Completed" {
		t.Errorf("Document()[status] = %v", doc["status"])
	}
	if v, ok := doc["deadline"]; !ok || v != nil {
		t.Errorf("Document()[deadline] = %v (present=%v), want explicit nil", v, ok)
	}
}
