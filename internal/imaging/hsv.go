package imaging

import (
	"image"
	"math"
)

// HSV is an 8-bit-per-channel HSV raster with interleaved H, S, V bytes.
//
// The hue byte spans a 255-step color wheel (red=0, green=85, blue=170);
// hue arithmetic wraps modulo 255. Saturation and value span the full
// 0-255 byte range.
type HSV struct {
	// W, H are the raster dimensions in pixels.
	W, H int

	// Pix holds the pixel data as W*H*3 bytes in H, S, V order,
	// row-major from the top-left.
	Pix []uint8
}

// ToHSV converts a normalized RGB image to its 8-bit HSV representation.
//
// The conversion quantizes hue as fraction-of-wheel × 255 with truncation,
// saturation as chroma/value × 255 with truncation, and value as the
// maximum RGB channel. Achromatic pixels (all channels equal) get hue 0
// and saturation 0.
func ToHSV(img *image.NRGBA) *HSV {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	out := &HSV{W: w, H: h, Pix: make([]uint8, w*h*3)}

	di := 0
	for y := 0; y < h; y++ {
		si := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		for x := 0; x < w; x++ {
			hh, ss, vv := rgbToHSV(img.Pix[si], img.Pix[si+1], img.Pix[si+2])
			out.Pix[di] = hh
			out.Pix[di+1] = ss
			out.Pix[di+2] = vv
			si += 4
			di += 3
		}
	}
	return out
}

// ToNRGBA converts the HSV raster back to an 8-bit RGB image.
// The result is fully opaque.
func (p *HSV) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, p.W, p.H))

	di := 0
	for si := 0; si < len(p.Pix); si += 3 {
		r, g, b := hsvToRGB(p.Pix[si], p.Pix[si+1], p.Pix[si+2])
		out.Pix[di] = r
		out.Pix[di+1] = g
		out.Pix[di+2] = b
		out.Pix[di+3] = 0xFF
		di += 4
	}
	return out
}

// ShiftHue returns a copy of the raster with every hue byte advanced by
// shift, wrapping modulo 255. The receiver is never modified; every frame
// of a cycle derives from the same pristine source raster.
//
// The modulus is 255, not 256: the hue byte encodes a 255-step wheel, so
// a hue of 250 shifted by 10 lands on 5, never on 260 truncated to 4.
// Saturation and value bytes are copied unchanged.
func (p *HSV) ShiftHue(shift uint8) *HSV {
	out := &HSV{W: p.W, H: p.H, Pix: make([]uint8, len(p.Pix))}
	copy(out.Pix, p.Pix)
	if shift == 0 {
		return out
	}
	for i := 0; i < len(out.Pix); i += 3 {
		out.Pix[i] = uint8((int(out.Pix[i]) + int(shift)) % 255)
	}
	return out
}

// rgbToHSV converts one 8-bit RGB pixel to 8-bit HSV.
//
// The arithmetic runs in 32-bit floats. The quantization depends on it:
// the wheel fraction for green is stored as the float32 above 1/3, so
// truncating after the ×255 lands on 85 (and blue on 170); at float64
// precision the same pixels would truncate to 84 and 169.
func rgbToHSV(r, g, b uint8) (uint8, uint8, uint8) {
	maxc := max3(r, g, b)
	minc := min3(r, g, b)
	v := maxc
	if maxc == minc {
		return 0, 0, v
	}

	cr := float32(maxc - minc)
	s := cr / float32(maxc)
	rc := float32(maxc-r) / cr
	gc := float32(maxc-g) / cr
	bc := float32(maxc-b) / cr

	var h float32
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = float32(math.Mod(float64(h)/6.0+1.0, 1.0))

	return clamp8(int(float64(h) * 255.0)), clamp8(int(float64(s) * 255.0)), v
}

// hsvToRGB converts one 8-bit HSV pixel back to 8-bit RGB.
func hsvToRGB(h, s, v uint8) (uint8, uint8, uint8) {
	if s == 0 {
		return v, v, v
	}

	fh := float64(h) / 255.0
	fs := float64(s) / 255.0
	fv := float64(v)

	sector := int(fh * 6.0)
	f := fh*6.0 - float64(sector)

	p := clamp8(int(math.Round(fv * (1.0 - fs))))
	q := clamp8(int(math.Round(fv * (1.0 - fs*f))))
	t := clamp8(int(math.Round(fv * (1.0 - fs*(1.0-f)))))

	switch sector % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// max3 returns the largest of three bytes.
func max3(a, b, c uint8) uint8 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

// min3 returns the smallest of three bytes.
func min3(a, b, c uint8) uint8 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

// clamp8 constrains an int to the byte range [0, 255].
func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
