package imagepkg

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestStampQR(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	img := imaging.New(600, 300, white)

	out, err := StampQR(img, "Site A - Client - Campaign - 010125")
	if err != nil {
		t.Fatalf("StampQR: %v", err)
	}
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}

	dark := 0
	for y := 200; y < 300; y++ {
		for x := 500; x < 600; x++ {
			if out.NRGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no QR modules found in the bottom-right corner")
	}
	if got := out.NRGBAAt(10, 10); got != white {
		t.Errorf("top-left pixel changed to %v", got)
	}
}

func TestStampQRTooSmall(t *testing.T) {
	img := imaging.New(60, 60, color.NRGBA{A: 255})
	if _, err := StampQR(img, "x"); err == nil {
		t.Fatal("expected error for tiny image")
	}
}
