package param

import (
	"fmt"
	"math"
)

// Constraint restricts the domain of a parameter's constrained value.
type Constraint int

const (
	// Unconstrained parameters take any real value.
	Unconstrained Constraint = iota
	// Positive parameters are strictly positive. The working representation
	// stays unconstrained and is mapped through exp, so an optimizer moving
	// freely over it can never produce a non-positive value.
	Positive
)

func (c Constraint) String() string {
	switch c {
	case Unconstrained:
		return "unconstrained"
	case Positive:
		return "positive"
	default:
		return fmt.Sprintf("Constraint(%d)", int(c))
	}
}

// Parameter is a vector-valued hyperparameter together with its constraint.
// The raw slice holds the unconstrained working representation.
type Parameter struct {
	constraint Constraint
	raw        []float64
}

// New builds a parameter from its initial value, given in the constrained
// domain. For Positive every component must be strictly positive; the working
// representation stores its logarithm so that Value round-trips.
func New(value []float64, c Constraint) *Parameter {
	raw := make([]float64, len(value))
	for i, v := range value {
		if c == Positive {
			if v <= 0 {
				panic(fmt.Sprintf("param: initial value %v not positive", v))
			}
			raw[i] = math.Log(v)
		} else {
			raw[i] = v
		}
	}
	return &Parameter{constraint: c, raw: raw}
}

// NewScalar builds a one-component parameter.
func NewScalar(value float64, c Constraint) *Parameter {
	return New([]float64{value}, c)
}

// Value returns the constrained value, computed fresh from the working
// representation. The result always satisfies the constraint.
func (p *Parameter) Value() []float64 {
	out := make([]float64, len(p.raw))
	for i, r := range p.raw {
		out[i] = constrain(p.constraint, r)
	}
	return out
}

// Float returns the first component of the constrained value.
func (p *Parameter) Float() float64 {
	return constrain(p.constraint, p.raw[0])
}

func (p *Parameter) Len() int { return len(p.raw) }

func (p *Parameter) Constraint() Constraint { return p.constraint }

// Raw returns a copy of the working representation.
func (p *Parameter) Raw() []float64 {
	out := make([]float64, len(p.raw))
	copy(out, p.raw)
	return out
}

// SetRaw rebinds the working representation. The dimension is fixed at
// construction.
func (p *Parameter) SetRaw(raw []float64) {
	if len(raw) != len(p.raw) {
		panic(fmt.Sprintf("param: dimension changed from %d to %d", len(p.raw), len(raw)))
	}
	copy(p.raw, raw)
}

func constrain(c Constraint, raw float64) float64 {
	if c == Positive {
		return math.Exp(raw)
	}
	return raw
}
