package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Identity Matrix.
func Eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// Make a diagonal matrix from the given entries, zero elsewhere.
func DiagOf(values []float64) *mat.Dense {
	n := len(values)
	out := mat.NewDense(n, n, nil)
	for i, v := range values {
		out.Set(i, i, v)
	}
	return out
}

// Subtract offset from every row of x. offset has one component per column.
func CenterRows(x *mat.Dense, offset []float64) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		src := x.RawRowView(i)
		dst := out.RawRowView(i)
		for j := range dst {
			dst[j] = src[j] - offset[j]
		}
	}
	return out
}
