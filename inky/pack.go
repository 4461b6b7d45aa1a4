// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

// packNibbles packs two pixels per byte, first pixel in the high nibble.
func packNibbles(pix []uint8) []byte {
	out := make([]byte, (len(pix)+1)/2)
	for i := 0; i < len(pix); i += 2 {
		b := (pix[i] << 4) & 0xF0
		if i+1 < len(pix) {
			b |= pix[i+1] & 0x0F
		}
		out[i/2] = b
	}
	return out
}

// pack2bpp packs four pixels per byte, first pixel in the two high bits.
func pack2bpp(pix []uint8) []byte {
	out := make([]byte, (len(pix)+3)/4)
	for i, v := range pix {
		out[i/4] |= (v & 0x03) << uint(6-2*(i%4))
	}
	return out
}

// packBits packs one bit per pixel, MSB first, set where on returns true.
// The last byte is zero padded.
func packBits(pix []uint8, on func(v uint8) bool) []byte {
	out := make([]byte, (len(pix)+7)/8)
	for i, v := range pix {
		if on(v) {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}

func packSingleNibbles(fb *FrameBuffer) [][]byte {
	return [][]byte{packNibbles(fb.Pix)}
}

func packSingle2bpp(fb *FrameBuffer) [][]byte {
	return [][]byte{pack2bpp(fb.Pix)}
}

// packPlanes returns the black/white plane, where black is 0, and the accent
// plane, where the accent is 1.
func packPlanes(fb *FrameBuffer) [][]byte {
	bw := packBits(fb.Pix, func(v uint8) bool { return v != uint8(BlackHAT) })
	accent := packBits(fb.Pix, func(v uint8) bool { return v == uint8(RedHAT) })
	return [][]byte{bw, accent}
}

// packHalves splits every row at half its width and packs the left halves
// and right halves as two nibble streams, one per chip select.
func packHalves(fb *FrameBuffer) [][]byte {
	half := fb.Width / 2
	left := make([]uint8, 0, half*fb.Height)
	right := make([]uint8, 0, (fb.Width-half)*fb.Height)
	for y := 0; y < fb.Height; y++ {
		row := fb.Pix[y*fb.Width : (y+1)*fb.Width]
		left = append(left, row[:half]...)
		right = append(right, row[half:]...)
	}
	return [][]byte{packNibbles(left), packNibbles(right)}
}
