package sheet

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// cellSuffixes name the four renders of a sheet, left to right.
var cellSuffixes = []string{"-front", "-front-shiny", "-back", "-back-shiny"}

// Slice crops the sheet at srcPath into four PNG files under destDir, named
// baseName plus the render suffix. Returns the paths written, in sheet
// order.
func Slice(srcPath, destDir, baseName string) ([]string, error) {
	file, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", srcPath, err)
	}

	bounds := img.Bounds()
	if bounds.Dx()%len(cellSuffixes) != 0 {
		return nil, fmt.Errorf("sheet %s width %d is not divisible into %d cells", srcPath, bounds.Dx(), len(cellSuffixes))
	}
	cellWidth := bounds.Dx() / len(cellSuffixes)

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(cellSuffixes))
	for i, suffix := range cellSuffixes {
		cellBounds := image.Rect(
			bounds.Min.X+i*cellWidth,
			bounds.Min.Y,
			bounds.Min.X+(i+1)*cellWidth,
			bounds.Max.Y,
		)
		cell := image.NewNRGBA(image.Rect(0, 0, cellWidth, bounds.Dy()))
		draw.Draw(cell, cell.Bounds(), img, cellBounds.Min, draw.Src)

		path := filepath.Join(destDir, baseName+suffix+".png")
		if err := writePNG(path, cell); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode asset %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close asset %s: %w", path, err)
	}
	return nil
}
