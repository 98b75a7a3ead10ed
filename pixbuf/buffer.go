package pixbuf

// BytesPerPixel is the size of one raw (r, g, b) triple.
const BytesPerPixel = 3

// Buffer is a flat RGB store of width*height pixels, row-major, with row 0
// first. Writes outside the buffer are ignored.
type Buffer struct {
	width, height int
	pix           []uint8
}

// Empty returns a zero-filled buffer.
func Empty(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*BytesPerPixel),
	}
}

// Clear returns a new buffer with every pixel set to (r, g, b).
func Clear(width, height int, r, g, b uint8) *Buffer {
	buf := Empty(width, height)
	if r == 0 && g == 0 && b == 0 {
		return buf
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, r, g, b)
		}
	}
	return buf
}

func (buf *Buffer) Width() int  { return buf.width }
func (buf *Buffer) Height() int { return buf.height }

// Bytes returns the underlying storage. It is not a copy.
func (buf *Buffer) Bytes() []uint8 { return buf.pix }

func (buf *Buffer) Set(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= buf.width || y >= buf.height {
		return
	}
	off := (y*buf.width + x) * BytesPerPixel
	buf.pix[off+0] = r
	buf.pix[off+1] = g
	buf.pix[off+2] = b
}

// At returns the pixel at (x, y), or black if it is out of range.
func (buf *Buffer) At(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= buf.width || y >= buf.height {
		return 0, 0, 0
	}
	off := (y*buf.width + x) * BytesPerPixel
	return buf.pix[off+0], buf.pix[off+1], buf.pix[off+2]
}
