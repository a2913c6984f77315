package grid_test

import (
	"fmt"
	"strings"

	"github.com/njcad/crossword/grid"
)

// ExampleGrid_Commit crosses two words and shows that Undo restores the
// shared letter's ownership instead of blanking it. Empty cells print
// as '.' to keep the output block unambiguous.
func ExampleGrid_Commit() {
	g, err := grid.New(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	show := func() {
		fmt.Println(strings.ReplaceAll(g.Repr(), " ", "."))
	}

	across := grid.Placement{Index: 0, Word: "cat", Row: 0, Col: 0, Dir: grid.Horizontal}
	down := grid.Placement{Index: 1, Word: "car", Row: 0, Col: 0, Dir: grid.Vertical}
	_ = g.Commit(across)
	_ = g.Commit(down)
	show()

	_ = g.Undo(down)
	fmt.Println("---")
	show()
	// Output:
	// cat
	// a..
	// r..
	// ---
	// cat
	// ...
	// ...
}
