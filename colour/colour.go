package colour

// Colour is a colour accepted by draw calls. Every encoding resolves to the
// same raw (red, green, blue) triple that the pixel buffer stores.
type Colour interface {
	ToRaw() (r, g, b uint8)
}

// RGBA is a four-channel colour.
//
// A is accepted but not consumed: pixels are written as an opaque overwrite.
type RGBA struct {
	R, G, B, A uint8
}

func (c RGBA) ToRaw() (uint8, uint8, uint8) {
	return c.R, c.G, c.B
}

// Hex is a packed 0xRRGGBB colour. Bits above 23 are ignored.
type Hex uint32

func (h Hex) ToRaw() (uint8, uint8, uint8) {
	return uint8((h & 0xff0000) >> 16), uint8((h & 0x00ff00) >> 8), uint8(h & 0x0000ff)
}
