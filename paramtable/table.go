package paramtable

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"paramtable-adapter/internal/common"
	"paramtable-adapter/record"
	"paramtable-adapter/utils"
)

// headerSep joins field names in the header; the runner splits on the
// same separator to recover argument names.
const headerSep = ", "

// Table is the assembled parametrization input: a joined header naming
// the fields of every row, and one row per input case in input order.
type Table struct {
	Header string
	Rows   []Row
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Names splits the header back into individual argument names.
// Returns nil for an empty table.
func (t Table) Names() []string {
	if t.Header == "" {
		return nil
	}

	return strings.Split(t.Header, headerSep)
}

// Build reduces cases into a Table.
//
// The header is derived from the FIRST case's record only; later cases
// are never cross-checked against it. An empty batch is not an error:
// it logs a warning and returns an empty table. The only failure mode
// is a record that cannot be enumerated at all (nil or non-struct).
func Build(cases []Case, opts ...Option) (Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if common.IsEmpty(cases) {
		cfg.log.Warnf("no test cases provided for parametrization")
		return Table{}, nil
	}

	first, _ := common.First(cases)

	header, err := buildHeader(first, cfg.namer)
	if err != nil {
		return Table{}, fmt.Errorf("case 0: %w", err)
	}

	cfg.log.Infof("parametrization keys: %s", header)

	var st *idStem
	if cfg.idStem != "" {
		st = newStem(cfg.idStem, takenIDs(cases))
	}

	rows := make([]Row, 0, len(cases))

	for i, c := range cases {
		if st != nil && c.ID == "" {
			c.ID = st.Next()
		}

		row, err := buildRow(c)
		if err != nil {
			return Table{}, fmt.Errorf("case %d: %w", i, err)
		}

		rows = append(rows, row)
		cfg.log.Infof("[%d] vals: %s", i, spew.Sprintf("%v", row.RowValues()))
	}

	return Table{Header: header, Rows: rows}, nil
}

// buildHeader joins the first record's field names, formatted by namer
// when one is set.
func buildHeader(c Case, namer func(string) string) (string, error) {
	fields, err := record.Enumerate(c.Record)
	if err != nil {
		return "", err
	}

	names := record.Names(fields)
	if namer != nil {
		names = utils.Map(names, namer)
	}

	return strings.Join(names, headerSep), nil
}

// buildRow converts one case into a Row. Each row is built independently;
// no length check against other rows happens here.
func buildRow(c Case) (Row, error) {
	fields, err := record.Enumerate(c.Record)
	if err != nil {
		return nil, err
	}

	vals := record.Values(fields)

	if !c.annotated() {
		return PlainRow{Vals: vals}, nil
	}

	row := AnnotatedRow{Vals: vals, ID: c.ID}
	if len(c.Marks) > 0 {
		row.Marks = c.Marks
	}

	return row, nil
}

// takenIDs collects the ids already assigned by the caller.
func takenIDs(cases []Case) map[string]struct{} {
	taken := make(map[string]struct{}, len(cases))

	for _, c := range cases {
		if c.ID != "" {
			taken[c.ID] = struct{}{}
		}
	}

	return taken
}
