// Package patch provides an explicit present/absent/null wrapper for
// partial-update payloads. A field omitted from the JSON input is left
// untouched by the mutator; an explicit null clears a nullable column.
// Plain pointers cannot express that distinction.
package patch

import "encoding/json"

// Field wraps one optional input field. The zero value is "absent".
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns a present field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Null returns a present field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the input at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was an explicit JSON null.
func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Value returns the carried value and whether one is present
// (set and not null).
func (f Field[T]) Value() (T, bool) {
	if !f.set || f.null {
		var zero T

		return zero, false
	}

	return f.value, true
}

// PatchValue is the untyped accessor used by the validator's custom type
// function. A carried value unwraps as itself, so explicit zero values like
// "" still hit the field's constraints; absent and null both unwrap as a
// typed nil pointer, which omitnil skips.
func (f Field[T]) PatchValue() any {
	if v, ok := f.Value(); ok {
		return v
	}

	return (*T)(nil)
}

// Apply copies the carried value into dst when one is present.
// Absent and null fields leave dst untouched.
func (f Field[T]) Apply(dst *T) {
	if v, ok := f.Value(); ok {
		*dst = v
	}
}

// ApplyPtr writes a nullable destination: a carried value sets it, an
// explicit null clears it, an absent field leaves it untouched.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.set {
		return
	}

	if f.null {
		*dst = nil

		return
	}

	v := f.value
	*dst = &v
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for keys present
// in the input, so the zero value keeps meaning "absent".
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true

	if string(data) == "null" {
		f.null = true

		return nil
	}

	return json.Unmarshal(data, &f.value)
}

// MarshalJSON implements json.Marshaler for logging and tests. Absent and
// null both encode as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if v, ok := f.Value(); ok {
		return json.Marshal(v)
	}

	return []byte("null"), nil
}
