// Package ppm writes pixel grids as plain-text P3 portable pixel-map images.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"rayscene/pkg/core"
)

// maxChannel is the maximum channel value declared in the PPM header
const maxChannel = 255

// Encode writes the pixel grid as a P3 PPM image: a "P3" magic line, the
// raster dimensions, the maximum channel value, then one line per row of
// space-separated R G B triples. Each channel is floor(clamp(c,0,1)*255).
// The grid is row-major with row 0 at the top of the image.
func Encode(w io.Writer, pixels [][]core.Vec3) error {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "P3\n%d %d\n%d\n", width, height, maxChannel)

	for _, row := range pixels {
		for i, color := range row {
			c := color.Clamp(0.0, 1.0)
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%d %d %d",
				int(c.X*maxChannel), int(c.Y*maxChannel), int(c.Z*maxChannel))
		}
		buf.WriteByte('\n')
	}

	// bufio carries any earlier write error through to Flush
	return buf.Flush()
}

// WriteFile encodes the pixel grid to a new file at the given path
func WriteFile(path string, pixels [][]core.Vec3) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %v", err)
	}
	defer file.Close()

	if err := Encode(file, pixels); err != nil {
		return fmt.Errorf("failed to write image: %v", err)
	}
	return nil
}
