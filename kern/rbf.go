package kern

import (
	"math"

	"github.com/ogaoue/gpe/frame"
	"github.com/ogaoue/gpe/param"
	"github.com/ogaoue/gpe/utils"
	"gonum.org/v1/gonum/mat"
)

// NewRBF builds a radial-basis (squared-exponential) kernel,
//
//	k(x, x') = σ² exp(−‖x − x'‖² / (2ℓ²))
//
// with positive scale sigma and lengthscale.
func NewRBF(columns []string, sigma, lengthscale float64) (*Kernel, error) {
	params := map[string]*param.Parameter{
		"sigma":       param.NewScalar(sigma, param.Positive),
		"lengthscale": param.NewScalar(lengthscale, param.Positive),
	}
	return New("rbf", columns, params, evalRBF)
}

func evalRBF(k *Kernel, data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error) {
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
		// k(x, x) = σ² for any x.
		out := utils.Eye(n)
		out.Scale(s2, out)
		return out, nil
	}
	l := k.Param("lengthscale").Float()
	cov := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		xi := x.RawRowView(i)
		for j := 0; j < m; j++ {
			d2 := sqDist(xi, y.RawRowView(j))
			cov.Set(i, j, s2*math.Exp(-d2/(2*l*l)))
		}
	}
	return cov, nil
}

func sqDist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
