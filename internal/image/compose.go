package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/youruser/mockupapp/internal/geometry"
)

// ErrPanelConfiguration is returned when panels and split ratios disagree.
var ErrPanelConfiguration = errors.New("panel configuration")

// Panel is one destination region of a template.
type Panel struct {
	Key  string
	Quad geometry.Quad
}

// ComposeSingle warps the whole artwork onto dst and paints the template
// over it, so transparent cut-outs in the template reveal the artwork.
func ComposeSingle(template, artwork *image.NRGBA, dst geometry.Quad) (*image.NRGBA, error) {
	size := template.Bounds().Size()
	layer, err := place(artwork, dst, size)
	if err != nil {
		return nil, err
	}
	base := imaging.New(size.X, size.Y, color.NRGBA{})
	base = imaging.Overlay(base, layer, image.Pt(0, 0), 1.0)
	return imaging.Overlay(base, template, image.Pt(0, 0), 1.0), nil
}

// ComposeMulti splits the artwork by ratios and warps each piece onto its
// panel in the order given. Overlapping panels are not blended specially;
// later panels paint over earlier ones.
func ComposeMulti(template, artwork *image.NRGBA, panels []Panel, ratios []float64) (*image.NRGBA, error) {
	if len(ratios) != len(panels) {
		return nil, fmt.Errorf("%w: %d split ratios for %d panels", ErrPanelConfiguration, len(ratios), len(panels))
	}
	pieces, err := SplitByRatios(artwork, ratios)
	if err != nil {
		return nil, err
	}

	size := template.Bounds().Size()
	base := imaging.New(size.X, size.Y, color.NRGBA{})
	for i, p := range panels {
		layer, err := place(pieces[i], p.Quad, size)
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", p.Key, err)
		}
		base = imaging.Overlay(base, layer, image.Pt(0, 0), 1.0)
	}
	return imaging.Overlay(base, template, image.Pt(0, 0), 1.0), nil
}

func place(piece *image.NRGBA, dst geometry.Quad, size image.Point) (*image.NRGBA, error) {
	b := piece.Bounds()
	c, err := geometry.SolveTransform(geometry.Rect(float64(b.Dx()), float64(b.Dy())), dst)
	if err != nil {
		return nil, err
	}
	return Warp(piece, c, size)
}

// Flatten composites img over an opaque background and drops transparency.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), opaque(bg))
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

func opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
