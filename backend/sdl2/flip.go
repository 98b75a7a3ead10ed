package sdl2

import "github.com/ushitora-anqou/rasteriser/pixbuf"

// flipRows copies pixels, stored bottom row first, into dst, addressed top
// row first with pitch bytes per row. Padding at the end of each dst row is
// left untouched.
func flipRows(dst []uint8, pitch int, pixels []uint8, width, height int) {
	rowBytes := width * pixbuf.BytesPerPixel
	for row := 0; row < height; row++ {
		off := (height - row - 1) * pitch
		copy(dst[off:off+rowBytes], pixels[row*rowBytes:(row+1)*rowBytes])
	}
}
