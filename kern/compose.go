package kern

import (
	"github.com/ogaoue/gpe/frame"
	"gonum.org/v1/gonum/mat"
)

// NewSum combines two kernels additively. The column selection is the
// ordered union of the parts'; each part extracts its own columns, so parts
// over different features compose. Diagonal-only mode delegates to the parts
// and sums their diagonals.
func NewSum(a, b *Kernel) (*Kernel, error) {
	return New("sum", union(a.columns, b.columns), nil, combine(a, b, (*mat.Dense).Add))
}

// NewProduct combines two kernels by elementwise multiplication.
func NewProduct(a, b *Kernel) (*Kernel, error) {
	return New("product", union(a.columns, b.columns), nil, combine(a, b, (*mat.Dense).MulElem))
}

func combine(a, b *Kernel, op func(dst *mat.Dense, x, y mat.Matrix)) EvalFunc {
	return func(k *Kernel, data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error) {
		left, err := a.Eval(data, newdata, diagOnly)
		if err != nil {
			return nil, err
		}
		right, err := b.Eval(data, newdata, diagOnly)
		if err != nil {
			return nil, err
		}
		if left.IsEmpty() {
			return left, nil
		}
		var cov mat.Dense
		op(&cov, left, right)
		return &cov, nil
	}
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, name := range a {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range b {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
