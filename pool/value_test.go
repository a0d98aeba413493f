package pool

import (
	"errors"
	"testing"
)

func TestValue_RoundTrip(t *testing.T) {
	cases := []any{42, "hello", 3.14, struct{ X int }{X: 7}}

	for _, want := range cases {
		switch w := want.(type) {
		case int:
			v := NewValue(w)
			got, err := Extract[int](v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != w {
				t.Errorf("got %v, want %v", got, w)
			}
		case string:
			v := NewValue(w)
			got, err := Extract[string](v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != w {
				t.Errorf("got %v, want %v", got, w)
			}
		case float64:
			v := NewValue(w)
			got, err := Extract[float64](v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != w {
				t.Errorf("got %v, want %v", got, w)
			}
		case struct{ X int }:
			v := NewValue(w)
			got, err := Extract[struct{ X int }](v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != w {
				t.Errorf("got %v, want %v", got, w)
			}
		}
	}
}

func TestValue_TypeMismatch(t *testing.T) {
	v := NewValue(42)
	_, err := Extract[string](v)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestValue_Empty(t *testing.T) {
	var v Value
	if !v.Empty() {
		t.Fatal("zero Value should be Empty")
	}

	got, err := Extract[int](v)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch extracting from an empty Value, got %v", err)
	}
	if got != 0 {
		t.Errorf("expected zero value alongside the error, got %v", got)
	}
}

func TestValue_NotEmptyAfterConstruction(t *testing.T) {
	v := NewValue("x")
	if v.Empty() {
		t.Fatal("constructed Value should not be Empty")
	}
}
