package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/youruser/mockupapp/internal/geometry"
)

func TestWarpOrientation(t *testing.T) {
	src := halves(20, 10, red, blue)
	c, err := geometry.SolveTransform(geometry.Rect(20, 10), geometry.Rect(40, 20))
	if err != nil {
		t.Fatalf("SolveTransform: %v", err)
	}
	out, err := Warp(src, c, image.Pt(50, 30))
	if err != nil {
		t.Fatalf("Warp: %v", err)
	}
	if b := out.Bounds(); b != image.Rect(0, 0, 50, 30) {
		t.Fatalf("bounds = %v", b)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"left half", 5, 10, red},
		{"right half", 35, 10, blue},
		{"outside right", 45, 10, color.NRGBA{}},
		{"outside below", 5, 25, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWarpPerspectiveKeepsSolidColour(t *testing.T) {
	green := color.NRGBA{G: 200, A: 255}
	src := imaging.New(64, 32, green)
	dst := geometry.Quad{{40, 20}, {180, 40}, {175, 120}, {35, 110}}
	c, err := geometry.SolveTransform(geometry.Rect(64, 32), dst)
	if err != nil {
		t.Fatalf("SolveTransform: %v", err)
	}
	out, err := Warp(src, c, image.Pt(200, 150))
	if err != nil {
		t.Fatalf("Warp: %v", err)
	}
	if got := out.NRGBAAt(100, 70); got != green {
		t.Errorf("interior pixel = %v, want %v", got, green)
	}
	if got := out.NRGBAAt(5, 5); got.A != 0 {
		t.Errorf("exterior pixel = %v, want transparent", got)
	}
}

func TestWarpRespectsSourceAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	c, err := geometry.SolveTransform(geometry.Rect(10, 10), geometry.Rect(10, 10))
	if err != nil {
		t.Fatalf("SolveTransform: %v", err)
	}
	out, err := Warp(src, c, image.Pt(10, 10))
	if err != nil {
		t.Fatalf("Warp: %v", err)
	}
	if got := out.NRGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

func TestCubicKernel(t *testing.T) {
	for _, tx := range []float64{0, 0.25, 0.5, 0.9} {
		sum := 0.0
		for k := range 4 {
			sum += cubic(tx - float64(k-1))
		}
		if sum < 0.999999 || sum > 1.000001 {
			t.Errorf("weights at %v sum to %v", tx, sum)
		}
	}
	if cubic(0) != 1 || cubic(1) != 0 || cubic(2) != 0 {
		t.Errorf("kernel is not interpolating")
	}
}
