package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	BasisSTO1G = "sto-1g"
	BasisSTO2G = "sto-2g"
	BasisSTO3G = "sto-3g"
)

// Orbital is a radial function psi(r).
type Orbital interface {
	Eval(r float64) float64
}

// SlaterOrbital 1s-орбиталь слейтеровского типа
type SlaterOrbital struct {
	Zeta float64
}

func (o SlaterOrbital) Eval(r float64) float64 {
	return math.Sqrt(math.Pow(o.Zeta, 3)/math.Pi) * math.Exp(-o.Zeta*r)
}

// GaussianPrimitive is one normalized s-type Gaussian weighted by Coeff.
type GaussianPrimitive struct {
	Coeff    float64
	Exponent float64
}

func (g GaussianPrimitive) Eval(r float64) float64 {
	norm := math.Pow(2*g.Exponent/math.Pi, 0.75)
	return g.Coeff * norm * math.Exp(-g.Exponent*r*r)
}

// ContractedGaussian представляет сжатую гауссову функцию (STO-nG)
type ContractedGaussian struct {
	Name       string
	Primitives []GaussianPrimitive
}

func (c ContractedGaussian) Eval(r float64) float64 {
	var sum float64
	for _, p := range c.Primitives {
		sum += p.Eval(r)
	}
	return sum
}

// Least-squares fits of 1, 2 and 3 Gaussians to a zeta=1 Slater orbital.
var (
	stoNGCoeffs = [][]float64{
		{1.000000},
		{0.678914, 0.430129},
		{0.444635, 0.535328, 0.154329},
	}
	stoNGExponents = [][]float64{
		{0.270950},
		{0.151623, 0.851819},
		{0.109818, 0.405771, 2.227660},
	}
)

// STONG returns the STO-nG contraction for a Slater orbital with the given
// zeta. Exponents of the zeta=1 fit are scaled by zeta^2.
func STONG(n int, zeta float64) (ContractedGaussian, error) {
	if n < 1 || n > len(stoNGCoeffs) {
		return ContractedGaussian{}, fmt.Errorf("%w: STO-%dG is not tabulated", ErrInvalidArgument, n)
	}
	if !(zeta > 0) {
		return ContractedGaussian{}, fmt.Errorf("%w: zeta must be positive, got %g", ErrInvalidArgument, zeta)
	}

	primitives := make([]GaussianPrimitive, n)
	for i := 0; i < n; i++ {
		primitives[i] = GaussianPrimitive{
			Coeff:    stoNGCoeffs[n-1][i],
			Exponent: stoNGExponents[n-1][i] * zeta * zeta,
		}
	}

	return ContractedGaussian{
		Name:       fmt.Sprintf("sto-%dg", n),
		Primitives: primitives,
	}, nil
}

// BasisByName resolves names like "STO-3G" to a contraction.
func BasisByName(name string, zeta float64) (ContractedGaussian, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BasisSTO1G:
		return STONG(1, zeta)
	case BasisSTO2G:
		return STONG(2, zeta)
	case BasisSTO3G:
		return STONG(3, zeta)
	default:
		return ContractedGaussian{}, fmt.Errorf("%w: %q", ErrUnknownBasis, name)
	}
}

// EvalOnGrid evaluates o at r = |x| for every grid point.
func EvalOnGrid(o Orbital, xs []float64) []float64 {
	values := make([]float64, len(xs))
	for i, x := range xs {
		values[i] = o.Eval(math.Abs(x))
	}
	return values
}
