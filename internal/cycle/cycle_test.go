package cycle

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeSolidPNG writes a solid-color PNG and returns its path.
func writeSolidPNG(t *testing.T, width, height int, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "src.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create source file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode source PNG: %v", err)
	}
	return path
}

func TestHueShift(t *testing.T) {
	tests := []struct {
		name      string
		i, frames int
		want      uint8
	}{
		{"frame 0 of 30", 0, 30, 0},
		{"frame 0 of 1", 0, 1, 0},
		{"frame 1 of 4", 1, 4, 63},
		{"frame 2 of 4", 2, 4, 127},
		{"frame 3 of 4", 3, 4, 191},
		{"frame 1 of 2", 1, 2, 127},
		{"frame 254 of 255", 254, 255, 254},
		{"frame 29 of 30", 29, 30, 246},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueShift(tt.i, tt.frames); got != tt.want {
				t.Errorf("HueShift(%d, %d) = %d, want %d", tt.i, tt.frames, got, tt.want)
			}
		})
	}
}

func TestHueShift_MonotonicWithinRange(t *testing.T) {
	for _, frames := range []int{1, 2, 7, 30, 100, 255, 1000} {
		prev := -1
		for i := 0; i < frames; i++ {
			shift := int(HueShift(i, frames))
			if shift < 0 || shift >= 255 {
				t.Fatalf("frames=%d i=%d: shift %d outside [0,255)", frames, i, shift)
			}
			if shift < prev {
				t.Fatalf("frames=%d i=%d: shift %d decreased from %d", frames, i, shift, prev)
			}
			prev = shift
		}
	}
}

func TestCycleHues_ValidationErrors(t *testing.T) {
	input := writeSolidPNG(t, 2, 2, color.NRGBA{50, 100, 150, 255})

	tests := []struct {
		name    string
		input   string
		output  string
		opts    Options
		wantErr error
	}{
		{
			name:    "bad output extension",
			input:   input,
			output:  "out.jpg",
			opts:    Options{NumFrames: 4, FrameDuration: 100},
			wantErr: ErrValidation,
		},
		{
			name:    "zero frames",
			input:   input,
			output:  "out.gif",
			opts:    Options{NumFrames: 0, FrameDuration: 100},
			wantErr: ErrValidation,
		},
		{
			name:    "negative frames",
			input:   input,
			output:  "out.gif",
			opts:    Options{NumFrames: -3, FrameDuration: 100},
			wantErr: ErrValidation,
		},
		{
			name:    "missing input",
			input:   "does-not-exist.png",
			output:  "out.gif",
			opts:    Options{NumFrames: 4, FrameDuration: 100},
			wantErr: ErrNotFound,
		},
		{
			// The existence check runs first, so a missing input wins even
			// when the output extension is also wrong.
			name:    "missing input and bad extension",
			input:   "does-not-exist.png",
			output:  "out.jpg",
			opts:    Options{NumFrames: 4, FrameDuration: 100},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CycleHues(tt.input, tt.output, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want class %v", err, tt.wantErr)
			}
		})
	}
}

func TestCycleHues_DecodeError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(input, []byte("not an image at all"), 0o644); err != nil {
		t.Fatalf("failed to write garbage input: %v", err)
	}

	_, err := CycleHues(input, filepath.Join(dir, "out.gif"),
		Options{NumFrames: 4, FrameDuration: 100})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got error %v, want class %v", err, ErrDecode)
	}
}

func TestCycleHues_EndToEndGIF(t *testing.T) {
	input := writeSolidPNG(t, 2, 2, color.NRGBA{0, 128, 255, 255})
	output := filepath.Join(t.TempDir(), "out.gif")

	result, err := CycleHues(input, output, Options{NumFrames: 4, FrameDuration: 50})
	if err != nil {
		t.Fatalf("CycleHues failed: %v", err)
	}

	if result.Frames != 4 || result.Width != 2 || result.Height != 2 {
		t.Errorf("result: got %d frames %dx%d, want 4 frames 2x2",
			result.Frames, result.Width, result.Height)
	}
	if result.Format != "gif" {
		t.Errorf("result format: got %q, want %q", result.Format, "gif")
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("output is not a readable GIF: %v", err)
	}

	if len(decoded.Image) != 4 {
		t.Errorf("frame count: got %d, want 4", len(decoded.Image))
	}
	if decoded.LoopCount != 0 {
		t.Errorf("loop count: got %d, want 0 (infinite)", decoded.LoopCount)
	}
	for i, delay := range decoded.Delay {
		if delay != 5 {
			t.Errorf("frame %d delay: got %dcs, want 5cs", i, delay)
		}
	}
	for i, frame := range decoded.Image {
		if frame.Bounds().Dx() != 2 || frame.Bounds().Dy() != 2 {
			t.Errorf("frame %d: got %dx%d, want 2x2",
				i, frame.Bounds().Dx(), frame.Bounds().Dy())
		}
	}
}

func TestCycleHues_EndToEndAPNG(t *testing.T) {
	input := writeSolidPNG(t, 3, 2, color.NRGBA{200, 40, 40, 255})
	output := filepath.Join(t.TempDir(), "out.png")

	result, err := CycleHues(input, output, Options{NumFrames: 3, FrameDuration: 100})
	if err != nil {
		t.Fatalf("CycleHues failed: %v", err)
	}
	if result.Format != "apng" {
		t.Errorf("result format: got %q, want %q", result.Format, "apng")
	}

	// The stdlib png decoder sees an APNG's default image; that is enough
	// to prove the file is well formed and has the right dimensions.
	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("output is not a readable PNG: %v", err)
	}
	if format != "png" {
		t.Errorf("output format: got %q, want %q", format, "png")
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCycleHues_SingleFrame(t *testing.T) {
	input := writeSolidPNG(t, 2, 2, color.NRGBA{90, 200, 10, 255})
	output := filepath.Join(t.TempDir(), "out.gif")

	result, err := CycleHues(input, output, Options{NumFrames: 1, FrameDuration: 100})
	if err != nil {
		t.Fatalf("CycleHues failed for a single frame: %v", err)
	}
	if result.Frames != 1 {
		t.Errorf("frames: got %d, want 1", result.Frames)
	}
}

func TestCycleHues_MaxWidth(t *testing.T) {
	input := writeSolidPNG(t, 10, 4, color.NRGBA{255, 100, 0, 255})
	output := filepath.Join(t.TempDir(), "out.gif")

	result, err := CycleHues(input, output, Options{
		NumFrames:     2,
		FrameDuration: 100,
		MaxWidth:      5,
	})
	if err != nil {
		t.Fatalf("CycleHues failed: %v", err)
	}
	if result.Width != 5 || result.Height != 2 {
		t.Errorf("downscaled dimensions: got %dx%d, want 5x2", result.Width, result.Height)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.gif", "gif", false},
		{"OUT.GIF", "gif", false},
		{"anim.png", "apng", false},
		{"anim.apng", "apng", false},
		{"out.jpg", "", true},
		{"out", "", true},
		{"out.gif.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := outputFormat(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("got error %v, want class %v", err, ErrValidation)
				}
				return
			}
			if err != nil {
				t.Fatalf("outputFormat(%q) failed: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("outputFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
