package hal

// Panel pixels are little-endian RGB565, two bytes per pixel.

func pack565(r, g, b uint8) (lo, hi byte) {
	p := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	return byte(p), byte(p >> 8)
}

func unpack565(lo, hi byte) (r, g, b uint8) {
	p := uint16(lo) | uint16(hi)<<8
	r5, g6, b5 := (p>>11)&0x1F, (p>>5)&0x3F, p&0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}
