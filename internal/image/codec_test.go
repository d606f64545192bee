package imagepkg

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestSaveJPEGAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jpg")
	img := imaging.New(32, 16, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	if err := SaveJPEG(path, img, DefaultJPEGQuality); err != nil {
		t.Fatalf("SaveJPEG: %v", err)
	}
	got, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v", b)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm != 0o644 {
		t.Errorf("mode = %v, want -rw-r--r--", perm)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestSaveJPEGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.jpg")
	img := imaging.New(4, 4, color.NRGBA{A: 255})
	if err := SaveJPEG(path, img, DefaultJPEGQuality); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output exists after failed save: %v", err)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	src := imaging.New(3, 2, color.NRGBA{G: 255, A: 255})
	if err := imaging.Encode(&buf, src, imaging.PNG); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("pixel = %v", got)
	}
}
