package bitcode_test

import (
	"fmt"

	"github.com/cwbudde/algo-modwave/dsp/bitcode"
)

func ExampleParse() {
	seq, scheme, err := bitcode.Parse("a_A")
	if err != nil {
		panic(err)
	}
	fmt.Println(scheme, seq)

	seq, scheme, err = bitcode.Parse("d_12")
	if err != nil {
		panic(err)
	}
	fmt.Println(scheme, seq)

	// Output:
	// 7-bit ASCII 1000001
	// 4-bit Binary Coded Decimal 00010010
}
