package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ErrInvalidSplitRatios is returned when ratios cannot partition the artwork.
var ErrInvalidSplitRatios = errors.New("invalid split ratios")

// SplitByRatios cuts artwork into 2 or 3 contiguous full-height pieces, left
// to right. Every piece but the last is round(width*ratio) wide; the last one
// takes whatever is left, so widths always sum to the artwork width.
// Ratios summing above 1 and pieces that would end up zero or negative wide
// are rejected.
func SplitByRatios(artwork *image.NRGBA, ratios []float64) ([]*image.NRGBA, error) {
	if len(ratios) != 2 && len(ratios) != 3 {
		return nil, fmt.Errorf("%w: need 2 or 3 values, got %d", ErrInvalidSplitRatios, len(ratios))
	}

	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	// slack for tables like 0.33/0.34/0.33
	if sum > 1+1e-9 {
		return nil, fmt.Errorf("%w: %v sums to %g", ErrInvalidSplitRatios, ratios, sum)
	}

	b := artwork.Bounds()
	total := b.Dx()
	widths := make([]int, len(ratios))
	rest := total
	for i, r := range ratios[:len(ratios)-1] {
		// round half to even, like the coordinate tables were tuned against
		widths[i] = int(math.RoundToEven(float64(total) * r))
		rest -= widths[i]
	}
	widths[len(widths)-1] = rest

	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: piece %d of %v would be %dpx wide", ErrInvalidSplitRatios, i, ratios, w)
		}
	}

	pieces := make([]*image.NRGBA, 0, len(widths))
	x := b.Min.X
	for _, w := range widths {
		pieces = append(pieces, imaging.Crop(artwork, image.Rect(x, b.Min.Y, x+w, b.Max.Y)))
		x += w
	}
	return pieces, nil
}
