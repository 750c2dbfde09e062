package record

import (
	"errors"
	"reflect"
)

var (
	ErrNilRecord  = errors.New("record is nil")
	ErrNotAStruct = errors.New("record is not a struct and does not implement FieldEnumerable")
)

// Enumerate returns the record's fields in declaration order.
//
// Resolution order:
//   - rec implements FieldEnumerable: its own enumeration is used as-is
//   - struct or pointer to struct: exported fields via reflection,
//     unexported fields are skipped
//
// A struct with no exported fields yields an empty slice and no error.
// Enumerate never mutates the record and is idempotent.
//
// TODO: flatten embedded structs instead of returning them as a single field.
func Enumerate(rec any) ([]Field, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	if fe, ok := rec.(FieldEnumerable); ok {
		return fe.EnumerateFields(), nil
	}

	val := reflect.ValueOf(rec)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, ErrNilRecord
		}

		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil, ErrNotAStruct
	}

	rtype := val.Type()
	fields := make([]Field, 0, rtype.NumField())

	for i := 0; i < rtype.NumField(); i++ {
		sf := rtype.Field(i)
		if !sf.IsExported() {
			continue
		}

		fields = append(fields, Field{
			Name:  sf.Name,
			Value: val.Field(i).Interface(),
		})
	}

	return fields, nil
}
