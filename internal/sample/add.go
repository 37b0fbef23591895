package sample

// Addable is any type the + operator is defined for.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~string
}

// Add returns a + b.
func Add[T Addable](a, b T) T {
	result := a + b
	return result
}
