package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SolveTransform fits the projective transform taking each src corner to the
// matching dst corner. The 8x8 system is solved by QR least squares, so a
// system without an exact solution still yields the best fit.
func SolveTransform(src, dst Quad) (Coefficients, error) {
	if err := src.validate(); err != nil {
		return Coefficients{}, fmt.Errorf("source: %w", err)
	}
	if err := dst.validate(); err != nil {
		return Coefficients{}, fmt.Errorf("destination: %w", err)
	}

	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := range 4 {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		r := 2 * i
		a.SetRow(r, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		b.SetVec(r, u)
		a.SetRow(r+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(r+1, v)
	}

	var qr mat.QR
	qr.Factorize(a)
	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, b); err != nil && !usable(err) {
		return Coefficients{}, fmt.Errorf("%w: singular system: %v", ErrInvalidGeometry, err)
	}

	var c Coefficients
	for i := range c {
		c[i] = x.AtVec(i)
	}
	if !c.finite() {
		return Coefficients{}, fmt.Errorf("%w: solution is not finite", ErrInvalidGeometry)
	}
	return c, nil
}
