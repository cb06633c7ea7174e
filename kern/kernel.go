package kern

import (
	"errors"
	"fmt"

	"github.com/ogaoue/gpe/frame"
	"github.com/ogaoue/gpe/param"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidConfiguration reports bad construction arguments.
	ErrInvalidConfiguration = errors.New("invalid kernel configuration")
	// ErrInvalidMode reports a diagonal-only request together with a second
	// dataset; the diagonal of a cross-covariance is undefined.
	ErrInvalidMode = errors.New("diagonal-only mode needs a single dataset")
)

// EvalFunc computes a covariance matrix from a kernel's extracted features
// and transformed parameters. newdata is nil in self-covariance mode.
type EvalFunc func(k *Kernel, data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error)

// Kernel binds a family name, an ordered feature-column selection and a
// parameter set to an evaluation function. Name and columns are fixed for the
// instance's lifetime; parameters may be rebound in place by a fitting loop
// between evaluations. There is no internal locking: concurrent evaluation is
// safe only while no goroutine mutates the parameters.
type Kernel struct {
	family  string
	columns []string
	params  map[string]*param.Parameter
	eval    EvalFunc
}

// New validates and binds a kernel instance. columns must be non-empty and
// free of duplicates. New kernel families are added by wrapping New in a
// constructor with their own EvalFunc, the way NewLinear does.
func New(family string, columns []string, params map[string]*param.Parameter, fn EvalFunc) (*Kernel, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s kernel needs at least one column", ErrInvalidConfiguration, family)
	}
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidConfiguration, name)
		}
		seen[name] = true
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	if params == nil {
		params = make(map[string]*param.Parameter)
	}
	return &Kernel{family: family, columns: cols, params: params, eval: fn}, nil
}

func (k *Kernel) Family() string { return k.family }

// Columns returns a copy of the kernel's feature-column selection.
func (k *Kernel) Columns() []string {
	out := make([]string, len(k.columns))
	copy(out, k.columns)
	return out
}

// Param returns the named parameter, or nil.
func (k *Kernel) Param(name string) *param.Parameter { return k.params[name] }

// Eval computes the covariance between data and newdata. A nil newdata means
// self-covariance against data alone. With diagOnly set, only the per-row
// self-variances are computed and placed on the diagonal of an otherwise zero
// square matrix; diagOnly is valid in self-covariance mode only.
func (k *Kernel) Eval(data, newdata frame.Frame, diagOnly bool) (*mat.Dense, error) {
	if diagOnly && newdata != nil {
		return nil, fmt.Errorf("%w: got a second dataset", ErrInvalidMode)
	}
	return k.eval(k, data, newdata, diagOnly)
}

// Matrix is Eval in full mode.
func (k *Kernel) Matrix(data, newdata frame.Frame) (*mat.Dense, error) {
	return k.Eval(data, newdata, false)
}

// Diag is Eval in diagonal-only mode.
func (k *Kernel) Diag(data frame.Frame) (*mat.Dense, error) {
	return k.Eval(data, nil, true)
}
