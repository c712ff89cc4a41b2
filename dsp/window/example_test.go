package window

import "fmt"

func ExampleApply() {
	buf := []float32{1, 1, 1, 1}
	Apply(TypeBartlett, buf)
	fmt.Println(buf)
	// Output:
	// [0 0.5 1 0.5]
}

func ExampleName() {
	for i := 0; i < Count(); i++ {
		fmt.Println(i, Name(i))
	}
	// Output:
	// 0 Rectangular
	// 1 Bartlett
	// 2 Hamming
	// 3 Hanning
}
