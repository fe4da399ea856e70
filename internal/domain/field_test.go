package domain_test

import (
	"testing"

	"fields/internal/domain"
)

func TestField_String(t *testing.T) {
	f := domain.Field{Name: "name", Value: "42"}
	want := "Field(name='name', value='42')"
	if got := f.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRecord_Field(t *testing.T) {
	r := domain.Record{ID: "x", Name: "test_field", Value: "test_value"}
	f := r.Field()
	if f.Name != "test_field" || f.Value != "test_value" {
		t.Fatalf("unexpected field: %+v", f)
	}
}
