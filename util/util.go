package util

import (
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// Repeat concatenates n copies of s.
func Repeat[A any](s []A, n int) []A {
	res := make([]A, 0, len(s)*n)
	for i := 0; i < n; i++ {
		res = append(res, s...)
	}
	return res
}

// Cycle extends s cyclically to exactly n elements.
func Cycle[A any](s []A, n int) []A {
	if len(s) == 0 {
		return nil
	}
	res := make([]A, n)
	for i := 0; i < n; i++ {
		res[i] = s[i%len(s)]
	}
	return res
}
