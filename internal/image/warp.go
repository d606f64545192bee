package imagepkg

import (
	"image"
	"math"

	"github.com/youruser/mockupapp/internal/geometry"
)

// Warp resamples src through the forward transform c onto a transparent
// canvas of the given size. Each destination pixel is looked up through the
// inverse transform and sampled bicubically; pixels that land outside src
// stay fully transparent.
func Warp(src *image.NRGBA, c geometry.Coefficients, size image.Point) (*image.NRGBA, error) {
	inv, err := c.Inverse()
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))

	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if b.Empty() {
		return dst, nil
	}
	area := coverage(c, geometry.Rect(w, h), dst.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		i := dst.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x, i = x+1, i+4 {
			p := inv.Apply(geometry.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			// also rejects NaN
			if !(p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h) {
				continue
			}
			sampleBicubic(src, p.X-0.5, p.Y-0.5, dst.Pix[i:i+4:i+4])
		}
	}
	return dst, nil
}

// coverage bounds the destination pixels the warped rectangle can touch.
// When every corner has a positive denominator the image of the rectangle
// is the convex quad spanned by the mapped corners; otherwise the rectangle
// crosses the vanishing line and the whole canvas is scanned.
func coverage(c geometry.Coefficients, rect geometry.Quad, canvas image.Rectangle) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range rect {
		if c.Denom(p) <= 0 {
			return canvas
		}
		q := c.Apply(p)
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}
	r := image.Rect(
		int(math.Floor(clampf(minX, -1, float64(canvas.Max.X))))-1,
		int(math.Floor(clampf(minY, -1, float64(canvas.Max.Y))))-1,
		int(math.Ceil(clampf(maxX, -1, float64(canvas.Max.X))))+1,
		int(math.Ceil(clampf(maxY, -1, float64(canvas.Max.Y))))+1,
	)
	return r.Intersect(canvas)
}

// cubic is the Catmull-Rom kernel (a = -0.5).
func cubic(t float64) float64 {
	const a = -0.5
	t = math.Abs(t)
	switch {
	case t <= 1:
		return ((a+2)*t-(a+3))*t*t + 1
	case t < 2:
		return ((a*t-5*a)*t+8*a)*t - 4*a
	}
	return 0
}

// sampleBicubic interpolates src at pixel-index coordinates (fx, fy) in
// premultiplied space and writes the non-premultiplied result to out.
func sampleBicubic(src *image.NRGBA, fx, fy float64, out []uint8) {
	b := src.Bounds()
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0

	var wx, wy [4]float64
	for k := range 4 {
		wx[k] = cubic(tx - float64(k-1))
		wy[k] = cubic(ty - float64(k-1))
	}

	var r, g, bl, a float64
	for j := range 4 {
		sy := clampi(int(y0)+j-1, 0, b.Dy()-1) + b.Min.Y
		for k := range 4 {
			sx := clampi(int(x0)+k-1, 0, b.Dx()-1) + b.Min.X
			wt := wx[k] * wy[j]
			if wt == 0 {
				continue
			}
			p := src.Pix[src.PixOffset(sx, sy):]
			pa := float64(p[3])
			f := wt * pa / 255
			r += f * float64(p[0])
			g += f * float64(p[1])
			bl += f * float64(p[2])
			a += wt * pa
		}
	}

	if a <= 0 {
		return
	}
	out[0] = clamp8(r * 255 / a)
	out[1] = clamp8(g * 255 / a)
	out[2] = clamp8(bl * 255 / a)
	out[3] = clamp8(a)
}

func clamp8(v float64) uint8 {
	return uint8(clampf(math.Round(v), 0, 255))
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
