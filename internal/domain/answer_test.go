package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(map[string]Answer{
		"single": SingleAnswer("yes"),
		"multi":  MultiAnswer("a", "b"),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]Answer
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["single"].Kind != AnswerSingle || decoded["single"].Value != "yes" {
		t.Fatalf("expected single answer back, got %+v", decoded["single"])
	}
	if decoded["multi"].Kind != AnswerMulti || !reflect.DeepEqual(decoded["multi"].Values, []string{"a", "b"}) {
		t.Fatalf("expected multi answer back, got %+v", decoded["multi"])
	}
}

func TestAnswerRejectsOtherShapes(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"nested": true}`), &a); err == nil {
		t.Fatalf("expected error for object-shaped answer")
	}
	if err := json.Unmarshal([]byte(`42`), &a); err == nil {
		t.Fatalf("expected error for numeric answer")
	}
}

func TestAnswerIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		a    Answer
		want bool
	}{
		{"zero value", Answer{}, true},
		{"empty single", SingleAnswer(""), true},
		{"empty multi", MultiAnswer(), true},
		{"single", SingleAnswer("x"), false},
		{"multi", MultiAnswer("x"), false},
	}
	for _, tt := range tests {
		if got := tt.a.IsEmpty(); got != tt.want {
			t.Fatalf("%s: IsEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAnswerToggle(t *testing.T) {
	a := MultiAnswer("a")
	a = a.Toggle("b")
	if !reflect.DeepEqual(a.Values, []string{"a", "b"}) {
		t.Fatalf("expected add, got %v", a.Values)
	}
	a = a.Toggle("a")
	if !reflect.DeepEqual(a.Values, []string{"b"}) {
		t.Fatalf("expected removal, got %v", a.Values)
	}
}
