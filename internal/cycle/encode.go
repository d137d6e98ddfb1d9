package cycle

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/setanarut/apng"
)

// delayCentis converts a millisecond frame duration to the centisecond
// units GIF and APNG store, rounding to nearest.
func delayCentis(ms int) int {
	return (ms + 5) / 10
}

// encode writes the ordered frame sequence to path as an infinite-loop
// animation in the named format. All failures wrap ErrEncode.
func encode(path, format string, frames []image.Image, durationMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: no frames to write", ErrEncode)
	}

	delay := delayCentis(durationMS)
	switch format {
	case "gif":
		return encodeGIF(path, frames, delay)
	case "apng":
		return encodeAPNG(path, frames, delay)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrEncode, format)
	}
}

// encodeGIF writes the frames as a looping GIF.
//
// Each full-color frame is quantized to the 256-color Plan9 palette with
// Floyd-Steinberg dithering; GIF cannot carry more than 256 colors per
// frame. LoopCount 0 marks the animation as infinite.
func encodeGIF(path string, frames []image.Image, delay int) error {
	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// encodeAPNG writes the frames as a looping APNG. APNG keeps full 24-bit
// color, so frames survive without palette quantization.
//
// The file is opened here and encoded with apng.EncodeAll rather than the
// library's Save helper; Save log.Fatals on failure, and encode errors must
// come back to the caller as ErrEncode.
func encodeAPNG(path string, frames []image.Image, delay int) error {
	a := apng.APNG{
		Images:    frames,
		Delays:    make([]uint16, len(frames)),
		LoopCount: 0,
	}
	for i := range a.Delays {
		a.Delays[i] = uint16(delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := apng.EncodeAll(f, &a); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
