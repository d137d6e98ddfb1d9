package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

// AdjustSaturation scales the saturation of an image by change, where 0
// leaves the image unchanged, positive values intensify colors and -1
// fully desaturates to grayscale. The adjustment runs in RGB space before
// any HSV conversion. The result is re-normalized to an opaque NRGBA.
func AdjustSaturation(img image.Image, change float64) *image.NRGBA {
	if change == 0 {
		return Normalize(img)
	}
	return Normalize(adjust.Saturation(img, change))
}
