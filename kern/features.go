package kern

import (
	"fmt"

	"github.com/ogaoue/gpe/frame"
	"gonum.org/v1/gonum/mat"
)

// Features returns the n×d matrix of k's feature columns from f, in the
// kernel's column order. It is recomputed on every call: the frame may change
// between evaluations. Zero-row frames yield an empty matrix after the
// columns have still been checked for presence and type.
func Features(k *Kernel, f frame.Frame) (*mat.Dense, error) {
	n := f.Len()
	out := &mat.Dense{}
	if n > 0 {
		out = mat.NewDense(n, len(k.columns), nil)
	}
	for j, name := range k.columns {
		col, err := f.Numeric(name)
		if err != nil {
			return nil, fmt.Errorf("%s kernel: %w", k.family, err)
		}
		for i := 0; i < n; i++ {
			out.Set(i, j, col[i])
		}
	}
	return out, nil
}

// featurePair resolves the feature matrices for one evaluation call. y
// aliases x in self-covariance mode.
func featurePair(k *Kernel, data, newdata frame.Frame) (x, y *mat.Dense, err error) {
	x, err = Features(k, data)
	if err != nil {
		return nil, nil, err
	}
	if newdata == nil {
		return x, x, nil
	}
	y, err = Features(k, newdata)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
