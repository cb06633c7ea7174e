package kern

import (
	"github.com/ogaoue/gpe/frame"
	"github.com/ogaoue/gpe/param"
	"github.com/ogaoue/gpe/utils"
	"gonum.org/v1/gonum/mat"
)

// NewNoise builds a white-noise kernel with positive scale sigma. In
// self-covariance mode every observation carries independent noise, so the
// result is σ²·I regardless of feature values. In cross mode the kernel is an
// exact-match indicator: σ² where the two feature vectors coincide, zero
// elsewhere.
func NewNoise(columns []string, sigma float64) (*Kernel, error) {
	params := map[string]*param.Parameter{
		"sigma": param.NewScalar(sigma, param.Positive),
	}
	return New("noise", columns, params, evalNoise)
}

func evalNoise(k *Kernel, data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error) {
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
	if diagOnly || newdata == nil {
		out := utils.Eye(n)
		out.Scale(s2, out)
		return out, nil
	}
	cov := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		xi := x.RawRowView(i)
		for j := 0; j < m; j++ {
			if sqDist(xi, y.RawRowView(j)) == 0 {
				cov.Set(i, j, s2)
			}
		}
	}
	return cov, nil
}
