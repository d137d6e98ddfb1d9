package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// grayCutoff is the saturation below which a pixel counts as achromatic
// and is excluded from the hue histogram.
const grayCutoff = 0.05

// hueBucketWidth is the histogram bucket size in degrees.
const hueBucketWidth = 15

// HueBucket is one bin of a hue histogram.
type HueBucket struct {
	// Hue is the bucket's starting angle in degrees (0, 15, 30, ...).
	Hue int `json:"hue"`

	// Percentage of chromatic pixels whose hue falls in this bucket (0-100).
	Percentage float64 `json:"percentage"`
}

// HueProfileResult summarizes the hue content of an image.
//
// Buckets are sorted by frequency in descending order. A hue cycle rotates
// every bucket around the wheel by the same amount, so the profile shows
// which colors will be doing the moving.
type HueProfileResult struct {
	Buckets        []HueBucket `json:"buckets"`         // Dominant hue ranges, most common first
	MeanSaturation float64     `json:"mean_saturation"` // Mean saturation over all pixels (0-1)
	MeanValue      float64     `json:"mean_value"`      // Mean value/brightness over all pixels (0-1)
	GrayFraction   float64     `json:"gray_fraction"`   // Fraction of near-achromatic pixels (0-1)
}

// HueProfile computes a hue histogram and basic saturation/value statistics
// for an image.
//
// Pixels with saturation below 5% are counted as gray and excluded from the
// histogram, since their hue is numerically meaningless. At most count
// buckets are returned; fewer if the image occupies fewer hue ranges.
func HueProfile(img image.Image, count int) (*HueProfileResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("bucket count must be at least 1, got %d", count)
	}

	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil, fmt.Errorf("cannot profile empty image")
	}

	histogram := make(map[int]int)
	chromatic := 0
	var sumS, sumV float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			h, s, v := c.Hsv()
			sumS += s
			sumV += v
			if s < grayCutoff {
				continue
			}
			chromatic++
			histogram[int(h)/hueBucketWidth*hueBucketWidth]++
		}
	}

	buckets := make([]HueBucket, 0, len(histogram))
	for hue, n := range histogram {
		buckets = append(buckets, HueBucket{
			Hue:        hue,
			Percentage: float64(n) / float64(chromatic) * 100,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Percentage != buckets[j].Percentage {
			return buckets[i].Percentage > buckets[j].Percentage
		}
		return buckets[i].Hue < buckets[j].Hue
	})
	if len(buckets) > count {
		buckets = buckets[:count]
	}

	return &HueProfileResult{
		Buckets:        buckets,
		MeanSaturation: sumS / float64(total),
		MeanValue:      sumV / float64(total),
		GrayFraction:   float64(total-chromatic) / float64(total),
	}, nil
}
