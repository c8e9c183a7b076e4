package sheet

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestSheet produces a 4-cell sheet where each cell is filled with a
// distinct red channel value, so crops can be verified by color.
func writeTestSheet(t *testing.T, path string, cellWidth, height int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, cellWidth*4, height))
	for cell := 0; cell < 4; cell++ {
		for x := cell * cellWidth; x < (cell+1)*cellWidth; x++ {
			for y := 0; y < height; y++ {
				img.Set(x, y, color.NRGBA{R: uint8(cell * 50), A: 255})
			}
		}
	}

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test sheet: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		t.Fatalf("encode test sheet: %v", err)
	}
}

func TestSliceProducesFourAssets(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "0006(m).png")
	writeTestSheet(t, src, 8, 8)

	paths, err := Slice(src, filepath.Join(dir, "out"), "Charizard-Mega")
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("expected 4 assets, got %v", paths)
	}

	wantNames := []string{
		"Charizard-Mega-front.png",
		"Charizard-Mega-front-shiny.png",
		"Charizard-Mega-back.png",
		"Charizard-Mega-back-shiny.png",
	}
	for i, path := range paths {
		if filepath.Base(path) != wantNames[i] {
			t.Fatalf("asset %d = %s, want %s", i, filepath.Base(path), wantNames[i])
		}

		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("open asset: %v", err)
		}
		img, err := png.Decode(file)
		file.Close()
		if err != nil {
			t.Fatalf("decode asset %s: %v", path, err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
			t.Fatalf("asset %s has bounds %v, want 8x8", path, img.Bounds())
		}
		r, _, _, _ := img.At(4, 4).RGBA()
		if uint8(r>>8) != uint8(i*50) {
			t.Fatalf("asset %d has red %d, want %d; crop misaligned", i, uint8(r>>8), i*50)
		}
	}
}

func TestSliceRejectsUnevenWidth(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.png")

	img := image.NewNRGBA(image.Rect(0, 0, 10, 4))
	out, err := os.Create(src)
	if err != nil {
		t.Fatalf("create test sheet: %v", err)
	}
	if err := png.Encode(out, img); err != nil {
		t.Fatalf("encode test sheet: %v", err)
	}
	out.Close()

	if _, err := Slice(src, dir, "x"); err == nil {
		t.Fatal("expected an error for a width not divisible by 4")
	}
}
