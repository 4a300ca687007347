package models

import "encoding/json"

// Field is a JSON member that remembers whether it appeared in the document
// and whether it was an explicit null. A missing member leaves Set false.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Present returns a set, non-null Field holding v.
func Present[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a set Field holding an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// Raw returns the value to write to the store: nil for an explicit null.
func (f Field[T]) Raw() any {
	if f.Null {
		return nil
	}
	return f.Value
}
