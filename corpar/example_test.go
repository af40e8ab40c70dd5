package corpar_test

import (
	"fmt"

	"github.com/gcelano/ST2022/corpar"
)

// ExampleClassifier demonstrates learning two correspondence rules from
// full and partial observations, then predicting patterns that were
// never observed verbatim through the fallback search.
//
// Training tuples (0 = missing): the pairs {(2,2)→5, (2,Ø)→5} and
// {(3,3)→6, (3,Ø)→6} each form one clique, yielding the consensus rules
// (2,2)→5 and (3,3)→6.
func ExampleClassifier() {
	clf := corpar.New()
	X := [][]int{
		{2, 2}, {2, 0},
		{3, 3}, {3, 0},
	}
	y := []int{5, 5, 6, 6}
	if err := clf.Fit(X, y); err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Println(len(clf.Rules()))
	// (Ø,2) and (Ø,3) resolve by fallback; (4,4) matches nothing.
	fmt.Println(clf.Predict([][]int{{0, 2}, {0, 3}, {4, 4}}))
	// Output:
	// 2
	// [5 6 0]
}
