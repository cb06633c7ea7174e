package kern

import (
	"math"

	"github.com/ogaoue/gpe/frame"
	"github.com/ogaoue/gpe/param"
	"github.com/ogaoue/gpe/utils"
	"gonum.org/v1/gonum/mat"
)

// NewPeriodic builds a periodic kernel,
//
//	k(x, x') = σ² exp(−2 sin²(π ‖x − x'‖ / p) / ℓ²)
//
// with positive scale sigma, lengthscale and period.
func NewPeriodic(columns []string, sigma, lengthscale, period float64) (*Kernel, error) {
	params := map[string]*param.Parameter{
		"sigma":       param.NewScalar(sigma, param.Positive),
		"lengthscale": param.NewScalar(lengthscale, param.Positive),
		"period":      param.NewScalar(period, param.Positive),
	}
	return New("periodic", columns, params, evalPeriodic)
}

func evalPeriodic(k *Kernel, data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error) {
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
		out := utils.Eye(n)
		out.Scale(s2, out)
		return out, nil
	}
	l := k.Param("lengthscale").Float()
	p := k.Param("period").Float()
	cov := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		xi := x.RawRowView(i)
		for j := 0; j < m; j++ {
			dist := math.Sqrt(sqDist(xi, y.RawRowView(j)))
			s := math.Sin(math.Pi * dist / p)
			cov.Set(i, j, s2*math.Exp(-2*s*s/(l*l)))
		}
	}
	return cov, nil
}
