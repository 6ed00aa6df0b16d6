package stateiter_test

import (
	"fmt"

	"github.com/tmr232/stateiter"
)

func ExampleNew() {
	powers := stateiter.New(1, func(x int) (int, bool, int) {
		return x * 3, x < 27, x
	})
	for powers.Next() {
		fmt.Println(powers.Value())
	}
	// Output:
	// 1
	// 3
	// 9
	// 27
}

func ExampleSequence_Pull() {
	seq := stateiter.New("last", func(s string) (string, bool, string) {
		return "", false, s
	})
	for i := 0; i < 3; i++ {
		item, ok := seq.Pull()
		fmt.Printf("%q %v\n", item, ok)
	}
	// Output:
	// "last" true
	// "" false
	// "" false
}

func ExampleSequence_All() {
	letters := stateiter.FromSlice([]string{"a", "b", "c"})
	for letter := range letters.All() {
		fmt.Print(letter)
	}
	fmt.Println()
	// Output: abc
}
