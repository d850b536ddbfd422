package contacts

// Field is the common shape of a stored contact attribute.
// Concrete fields embed it and add their own validation on construction.
type Field struct {
	value string
}

// Value returns the stored raw value.
func (f Field) Value() string {
	return f.value
}

func (f Field) String() string {
	return f.value
}

// Name identifies a record inside the address book. Any non-empty string
// is acceptable; emptiness is rejected at the command layer.
type Name struct {
	Field
}

// NewName wraps a display name as a field.
func NewName(value string) Name {
	return Name{Field{value: value}}
}
