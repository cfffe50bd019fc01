package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/quartal/dtw"
	"github.com/katalvlaran/quartal/numeral"
)

// ExampleRhythmDistance compares the tresillo (gaps 3-3-2) with a stretched
// variant and with an unrelated rhythm, printing the gap alignment of the
// close pair.
func ExampleRhythmDistance() {
	tresillo, _ := numeral.BinaryFromComposition([]int{3, 3, 2})
	stretched, _ := numeral.BinaryFromComposition([]int{3, 3, 3, 2})
	far, _ := numeral.BinaryFromComposition([]int{1, 1, 6})

	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	opts.ReturnPath = true

	d, path, err := dtw.RhythmDistance(tresillo, stretched, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d, path)

	d, _, _ = dtw.RhythmDistance(tresillo, far, nil)
	fmt.Println(d)
	// Output:
	// 0 [{0 0} {0 1} {1 2} {2 3}]
	// 8
}
