package imagepkg

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRImage renders text as a size x size QR code.
func GenerateQRImage(text string, size int) (*image.NRGBA, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(pngBytes))
}

// StampQR pastes a QR code for text into the bottom-right corner of img,
// sized to a sixth of the shorter side.
func StampQR(img *image.NRGBA, text string) (*image.NRGBA, error) {
	b := img.Bounds()
	size := min(b.Dx(), b.Dy()) / 6
	margin := size / 8
	if size < 21 {
		return nil, fmt.Errorf("image %dx%d too small for a QR stamp", b.Dx(), b.Dy())
	}
	q, err := GenerateQRImage(text, size)
	if err != nil {
		return nil, fmt.Errorf("qr stamp: %w", err)
	}
	pos := image.Pt(b.Max.X-margin-q.Bounds().Dx(), b.Max.Y-margin-q.Bounds().Dy())
	return imaging.Paste(img, q, pos), nil
}
