package cycle

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/hue-cycle/internal/imaging"
)

// Defaults for optional parameters, applied by the CLI.
const (
	DefaultNumFrames     = 30
	DefaultFrameDuration = 100 // milliseconds
)

// Options configures a hue cycle run.
type Options struct {
	// NumFrames is the number of frames in the loop. Must be at least 1.
	NumFrames int

	// FrameDuration is the display time per frame in milliseconds.
	FrameDuration int

	// MaxWidth, if positive, downscales inputs wider than this before
	// cycling, preserving aspect ratio. Zero disables scaling.
	MaxWidth int

	// Saturation pre-adjusts color intensity before the cycle: 0 leaves
	// the image unchanged, positive values intensify, -1 desaturates
	// fully (which makes the cycle a no-op on a gray image).
	Saturation float64
}

// Result describes a completed cycle run.
type Result struct {
	Frames int    `json:"frames"` // Frames written
	Width  int    `json:"width"`  // Frame width in pixels
	Height int    `json:"height"` // Frame height in pixels
	Format string `json:"format"` // Output format: "gif" or "apng"
	Output string `json:"output"` // Output file path
}

// CycleHues converts the still image at inputPath into a looping animation
// at outputPath by rotating the hue of every pixel across opts.NumFrames
// frames.
//
// The source is decoded once, flattened to RGB, and converted once to 8-bit
// HSV; frame i shifts every hue byte by floor(255*i/NumFrames) mod 255,
// wrapping around the 255-step hue wheel. Frame 0 is the unshifted source.
// The frame sequence is encoded as an infinite loop with a uniform
// per-frame delay of opts.FrameDuration milliseconds.
//
// Arguments are checked before any decode attempt, in order: a missing
// input fails with ErrNotFound; then the output extension must name a
// looping-animation format (.gif, .png or .apng) and NumFrames must be at
// least 1, or CycleHues fails with ErrValidation. Decode and encode
// failures fail with ErrDecode and ErrEncode respectively.
//
// On success exactly one output file is written; on failure no output is
// produced (beyond whatever a failed encoder left behind). There is no
// retry and no partial progress.
func CycleHues(inputPath, outputPath string, opts Options) (*Result, error) {
	if stat, err := os.Stat(inputPath); err != nil || stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}
	format, err := outputFormat(outputPath)
	if err != nil {
		return nil, err
	}
	if opts.NumFrames < 1 {
		return nil, fmt.Errorf("%w: number of frames must be at least 1, got %d", ErrValidation, opts.NumFrames)
	}

	src, _, err := imaging.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	rgb := imaging.Normalize(src)
	if opts.MaxWidth > 0 && rgb.Rect.Dx() > opts.MaxWidth {
		rgb = imaging.FitWidth(rgb, opts.MaxWidth)
	}
	if opts.Saturation != 0 {
		rgb = imaging.AdjustSaturation(rgb, opts.Saturation)
	}

	// Single colorspace conversion; every frame derives from this raster.
	base := imaging.ToHSV(rgb)

	frames := make([]image.Image, 0, opts.NumFrames)
	for i := 0; i < opts.NumFrames; i++ {
		shifted := base.ShiftHue(HueShift(i, opts.NumFrames))
		frames = append(frames, shifted.ToNRGBA())
	}

	if err := encode(outputPath, format, frames, opts.FrameDuration); err != nil {
		return nil, err
	}

	return &Result{
		Frames: opts.NumFrames,
		Width:  base.W,
		Height: base.H,
		Format: format,
		Output: outputPath,
	}, nil
}

// HueShift returns the hue offset for frame i of a numFrames-frame cycle:
// floor(255*i/numFrames) mod 255. Computing the integer division before
// the modulo keeps the steps as evenly spaced as 8-bit arithmetic allows,
// and the result always lies in [0,255). Shift 0 falls on frame 0, so the
// first frame reproduces the source.
func HueShift(i, numFrames int) uint8 {
	return uint8((255 * i / numFrames) % 255)
}

// outputFormat maps the output path's extension to an encoder name.
func outputFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return "gif", nil
	case ".png", ".apng":
		return "apng", nil
	default:
		return "", fmt.Errorf("%w: output path %q must end in .gif, .png or .apng", ErrValidation, path)
	}
}
