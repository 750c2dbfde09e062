package record

import "paramtable-adapter/utils"

// Field is one named value of a record. Slices of Field preserve the
// record's declaration order.
type Field struct {
	Name  string
	Value any
}

// FieldEnumerable lets a record type control its own field enumeration
// instead of being reflected over. The returned slice must be stable
// between calls.
type FieldEnumerable interface {
	EnumerateFields() []Field
}

// Names returns the field names, in order.
func Names(fields []Field) []string {
	return utils.Map(fields, func(f Field) string { return f.Name })
}

// Values returns the field values, in order.
func Values(fields []Field) []any {
	return utils.Map(fields, func(f Field) any { return f.Value })
}
