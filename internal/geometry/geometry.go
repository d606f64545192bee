// Package geometry fits the projective transforms that place artwork onto a
// billboard template.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGeometry is returned for quads that do not have exactly four
// points and for transforms that cannot be solved or inverted.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Point is a real-valued pixel coordinate.
type Point struct {
	X, Y float64
}

// Quad is a four point region in top-left, top-right, bottom-right,
// bottom-left order. Degenerate quads are not rejected.
type Quad []Point

// Rect returns the corners of a w x h rectangle anchored at the origin.
func Rect(w, h float64) Quad {
	return Quad{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

func (q Quad) validate() error {
	if len(q) != 4 {
		return fmt.Errorf("%w: quad has %d points, want 4", ErrInvalidGeometry, len(q))
	}
	return nil
}

// Coefficients holds a, b, c, d, e, f, g, h of the mapping
//
//	x' = (a*x + b*y + c) / (g*x + h*y + 1)
//	y' = (d*x + e*y + f) / (g*x + h*y + 1)
type Coefficients [8]float64

// Denom returns g*x + h*y + 1 for p.
func (c Coefficients) Denom(p Point) float64 {
	return c[6]*p.X + c[7]*p.Y + 1
}

// Apply maps p through the transform. Points on the vanishing line map to
// NaN or infinite coordinates.
func (c Coefficients) Apply(p Point) Point {
	w := c.Denom(p)
	return Point{
		X: (c[0]*p.X + c[1]*p.Y + c[2]) / w,
		Y: (c[3]*p.X + c[4]*p.Y + c[5]) / w,
	}
}

func (c Coefficients) matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		c[0], c[1], c[2],
		c[3], c[4], c[5],
		c[6], c[7], 1,
	})
}

// Inverse returns the transform mapping destination points back to source
// points.
func (c Coefficients) Inverse() (Coefficients, error) {
	var inv mat.Dense
	if err := inv.Inverse(c.matrix()); err != nil && !usable(err) {
		return Coefficients{}, fmt.Errorf("%w: transform is not invertible: %v", ErrInvalidGeometry, err)
	}
	s := inv.At(2, 2)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Coefficients{}, fmt.Errorf("%w: inverse cannot be normalised", ErrInvalidGeometry)
	}
	var out Coefficients
	for i := range out {
		out[i] = inv.At(i/3, i%3) / s
	}
	if !out.finite() {
		return Coefficients{}, fmt.Errorf("%w: inverse is not finite", ErrInvalidGeometry)
	}
	return out, nil
}

func (c Coefficients) finite() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// usable reports whether a gonum error only flags poor conditioning. Such
// results are kept; stability for near-degenerate quads is not guaranteed.
func usable(err error) bool {
	var cond mat.Condition
	return errors.As(err, &cond) && !math.IsInf(float64(cond), 1)
}
