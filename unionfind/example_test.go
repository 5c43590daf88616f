package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// ExampleUnionFind demonstrates merging classes and querying connectivity.
//
// Scenario:
//
//   - Six elements 0..5.
//   - Merge 0–1, 1–2 and 3–4, leaving 5 alone.
//   - Expect three classes: {0,1,2}, {3,4}, {5}.
func ExampleUnionFind() {
	uf, _ := unionfind.New(6)
	_, _ = uf.Union(0, 1)
	_, _ = uf.Union(1, 2)
	_, _ = uf.Union(3, 4)

	same, _ := uf.Connected(0, 2)
	apart, _ := uf.Connected(2, 3)
	size, _ := uf.SizeOf(2)

	fmt.Println("classes:", uf.Count())
	fmt.Println("0~2:", same)
	fmt.Println("2~3:", apart)
	fmt.Println("|class(2)|:", size)

	// Output:
	// classes: 3
	// 0~2: true
	// 2~3: false
	// |class(2)|: 3
}
