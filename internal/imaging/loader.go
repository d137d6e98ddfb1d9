package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes the image file at path.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     source format and color model (e.g., *image.RGBA, *image.NRGBA,
//     *image.YCbCr, *image.Paletted).
//   - string: The detected format name ("png", "jpeg", "gif", "webp",
//     "bmp" or "tiff").
//   - error: Non-nil if the file cannot be opened or decoded.
//
// Load does not distinguish a missing file from an unreadable one; callers
// that need that distinction should stat the path first.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return img, format, nil
}

// Normalize flattens an image to an 8-bit RGB raster.
//
// The result is always a freshly allocated *image.NRGBA with bounds anchored
// at the origin. Palette and YCbCr representations are expanded to direct
// color, 16-bit channels are reduced to 8-bit, and any alpha information is
// discarded by forcing every pixel fully opaque. The input image is never
// modified.
func Normalize(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xFF
	}
	return out
}

// FitWidth downscales an image so its width does not exceed maxWidth,
// preserving aspect ratio. Images at or below maxWidth are returned
// normalized but otherwise unchanged. Uses Lanczos resampling.
func FitWidth(img image.Image, maxWidth int) *image.NRGBA {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return Normalize(img)
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	return Normalize(resized)
}

// ImageInfo contains metadata about an image file on disk.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded image format: "png", "jpeg", "gif", "webp",
	// "bmp" or "tiff". Detection is based on file contents, not extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha (transparency)
	// channel. Alpha is discarded during normalization either way.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info loads an image and returns metadata about it: dimensions, detected
// format, color depth, alpha presence and file size.
func Info(path string) (*ImageInfo, error) {
	img, format, err := Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
