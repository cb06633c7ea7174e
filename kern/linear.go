package kern

import (
	"fmt"

	"github.com/ogaoue/gpe/frame"
	"github.com/ogaoue/gpe/param"
	"github.com/ogaoue/gpe/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NewLinear builds a linear (dot-product) kernel over the given columns,
//
//	k(x, x') = σ² (x − c)·(x' − c)
//
// with a positive scale sigma and an unconstrained offset c, one component
// per column.
//
// The diagonal-only path keeps the behaviour of the reference implementation
// and does not subtract the offset: it returns σ²‖x‖² per row, which differs
// from the full-mode diagonal whenever c ≠ 0.
func NewLinear(columns []string, sigma float64, offset []float64) (*Kernel, error) {
	if len(offset) != len(columns) {
		return nil, fmt.Errorf("%w: offset has %d components for %d columns",
			ErrInvalidConfiguration, len(offset), len(columns))
	}
	params := map[string]*param.Parameter{
		"sigma":  param.NewScalar(sigma, param.Positive),
		"offset": param.New(offset, param.Unconstrained),
	}
	return New("linear", columns, params, evalLinear)
}

func evalLinear(k *Kernel, data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error) {
	x, y, err := featurePair(k, data, newdata)
	if err != nil {
		return nil, err
	}
	sigma := k.Param("sigma").Float()
	s2 := sigma * sigma
	n, _ := x.Dims()
	m, _ := y.Dims()
	if n == 0 || m == 0 {
		return &mat.Dense{}, nil
	}
	if diagOnly {
		diag := make([]float64, n)
		for i := range diag {
			row := x.RawRowView(i)
			diag[i] = s2 * floats.Dot(row, row)
		}
		return utils.DiagOf(diag), nil
	}
	c := k.Param("offset").Value()
	xc := utils.CenterRows(x, c)
	yc := xc // self-covariance reuses the centered rows, keeping K exactly symmetric
	if newdata != nil {
		yc = utils.CenterRows(y, c)
	}
	var cov mat.Dense
	cov.Mul(xc, yc.T())
	cov.Scale(s2, &cov)
	return &cov, nil
}
