package utils_test

import (
	"fmt"

	"paramtable-adapter/utils"
)

func ExampleMap() {
	fmt.Println(utils.Map([]int{1, 2, 3}, func(i int) int { return i * i }))
	fmt.Println(utils.Map([]string{"a", "bb"}, func(s string) int { return len(s) }))
	fmt.Println(utils.Map([]int(nil), func(i int) int { return i }) == nil)

	// Output:
	// [1 4 9]
	// [1 2]
	// true
}
