package sample

import "fmt"

// DefaultName is the name interpolated by the fixture greeting.
const DefaultName = "World"

var numbers = []int{1, 2, 3, 4, 5}

// Numbers returns a copy of the fixture input sequence.
func Numbers() []int {
	out := make([]int, len(numbers))
	copy(out, numbers)
	return out
}

// Greeting interpolates name into the fixture's hello line.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
