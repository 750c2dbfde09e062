package paramtable

import "paramtable-adapter/mark"

// Row is one parametrization entry. It is a sealed two-variant union:
// PlainRow for cases with no metadata, AnnotatedRow otherwise. Consumers
// can type-switch exhaustively over the two variants.
type Row interface {
	// RowValues returns the record's field values in field order.
	RowValues() []any

	isRow()
}

// PlainRow is a bare ordered tuple of field values.
type PlainRow struct {
	Vals []any
}

// AnnotatedRow bundles the field values with whichever of {id, marks}
// the case carried. An absent id is ""; absent marks are a nil slice
// (never an empty non-nil one).
type AnnotatedRow struct {
	Vals  []any
	ID    string
	Marks []mark.Mark
}

func (r PlainRow) RowValues() []any { return r.Vals }
func (r PlainRow) isRow()           {}

func (r AnnotatedRow) RowValues() []any { return r.Vals }
func (r AnnotatedRow) isRow()           {}
