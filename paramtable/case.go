package paramtable

import "paramtable-adapter/mark"

// Case is one wrapped test case: a record of fixture data plus optional
// runner metadata. A zero ID and empty Marks both mean "absent".
//
// Record can be any struct (or pointer to struct), or a type implementing
// record.FieldEnumerable. All cases in a batch are expected to expose the
// same fields in the same order as the first one; the adapter does not
// check this, a diverging case simply produces a misaligned row that the
// runner will reject.
type Case struct {
	Record any
	ID     string
	Marks  []mark.Mark
}

// Wrap is shorthand for Case{Record: rec}.
func Wrap(rec any) Case {
	return Case{Record: rec}
}

// WithID returns a copy of the case labeled with id.
func (c Case) WithID(id string) Case {
	c.ID = id
	return c
}

// WithMarks returns a copy of the case carrying the given marks.
func (c Case) WithMarks(marks ...mark.Mark) Case {
	c.Marks = marks
	return c
}

// annotated reports whether the case carries any runner metadata.
// An empty marks collection counts as absent.
func (c Case) annotated() bool {
	return c.ID != "" || len(c.Marks) > 0
}
