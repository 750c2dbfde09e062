package paramtable_test

import (
	"fmt"

	"paramtable-adapter/internal/diag"
	"paramtable-adapter/mark"
	"paramtable-adapter/paramtable"
)

func ExampleBuild() {
	type addCase struct {
		A, B, Sum int
	}

	tbl, err := paramtable.Build([]paramtable.Case{
		{Record: addCase{A: 1, B: 2, Sum: 3}},
		{Record: addCase{A: 2, B: 2, Sum: 5}, ID: "wrong on purpose", Marks: []mark.Mark{mark.XFail("demo")}},
	}, paramtable.WithLogger(&diag.Collector{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tbl.Header)

	for _, row := range tbl.Rows {
		switch r := row.(type) {
		case paramtable.PlainRow:
			fmt.Println("plain:", r.Vals)
		case paramtable.AnnotatedRow:
			fmt.Printf("annotated: %v id=%q marks=%v\n", r.Vals, r.ID, r.Marks)
		}
	}

	// Output:
	// A, B, Sum
	// plain: [1 2 3]
	// annotated: [2 2 5] id="wrong on purpose" marks=[xfail(demo)]
}
