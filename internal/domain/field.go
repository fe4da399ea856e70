package domain

import (
	"fmt"
	"time"
)

// Field is a named value. In permit documents the name is typically a
// physical athletic field ("Shoreline North Field") and the value whatever
// the caller attaches to it.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// String renders the field in its canonical display form.
func (f Field) String() string {
	return fmt.Sprintf("Field(name='%s', value='%s')", f.Name, f.Value)
}

// Record is a Field persisted in the local catalog.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// Field returns the record's field portion.
func (r Record) Field() Field { return Field{Name: r.Name, Value: r.Value} }
