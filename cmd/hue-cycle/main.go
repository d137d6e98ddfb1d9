package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/hue-cycle/internal/cycle"
	"github.com/ironsheep/hue-cycle/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes by error class.
const (
	exitUsage    = 1
	exitNotFound = 2
	exitDecode   = 3
	exitEncode   = 4
)

// profileBuckets is how many hue histogram buckets -profile prints.
const profileBuckets = 6

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hue-cycle %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	frames := flag.Int("frames", cycle.DefaultNumFrames, "number of frames in the loop")
	duration := flag.Int("duration", cycle.DefaultFrameDuration, "display time per frame in milliseconds")
	maxWidth := flag.Int("max-width", 0, "downscale inputs wider than this before cycling (0 = never)")
	saturation := flag.Float64("saturation", 0, "saturation adjustment applied before cycling (-1 to 1, 0 = unchanged)")
	info := flag.Bool("info", false, "print metadata for the input image and exit")
	profile := flag.Bool("profile", false, "print a hue profile for the input image and exit")
	flag.Usage = usage
	flag.Parse()

	// Keep stdout for results; diagnostics go to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("HUE_CYCLE_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("hue-cycle %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	args := flag.Args()

	if *info || *profile {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Error: -info and -profile take exactly one image path")
			os.Exit(exitUsage)
		}
		if err := inspect(args[0], *profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(inspectExitCode(err))
		}
		return
	}

	if len(args) != 2 {
		usage()
		os.Exit(exitUsage)
	}

	result, err := cycle.CycleHues(args[0], args[1], cycle.Options{
		NumFrames:     *frames,
		FrameDuration: *duration,
		MaxWidth:      *maxWidth,
		Saturation:    *saturation,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}

	if debug {
		log.Printf("encoded %d frames at %dms each", result.Frames, *duration)
	}
	fmt.Printf("wrote %s: %d frames, %dx%d, %s\n",
		result.Output, result.Frames, result.Width, result.Height, result.Format)
}

// inspect handles the -info and -profile modes, printing JSON to stdout.
func inspect(path string, profile bool) error {
	var result interface{}

	if profile {
		img, _, err := imaging.Load(path)
		if err != nil {
			return err
		}
		result, err = imaging.HueProfile(img, profileBuckets)
		if err != nil {
			return err
		}
	} else {
		var err error
		result, err = imaging.Info(path)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// inspectExitCode distinguishes a missing input from an unreadable one for
// the -info and -profile modes, matching the cycle path's taxonomy.
func inspectExitCode(err error) int {
	if errors.Is(err, os.ErrNotExist) {
		return exitNotFound
	}
	return exitDecode
}

// exitCode maps an error from the cycle package to a process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, cycle.ErrNotFound):
		return exitNotFound
	case errors.Is(err, cycle.ErrDecode):
		return exitDecode
	case errors.Is(err, cycle.ErrEncode):
		return exitEncode
	default:
		return exitUsage
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "hue-cycle - turn a still image into a looping hue-rotation animation")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  hue-cycle [options] <input> <output.gif|.png|.apng>")
	fmt.Fprintln(os.Stderr, "  hue-cycle -info <input>")
	fmt.Fprintln(os.Stderr, "  hue-cycle -profile <input>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  HUE_CYCLE_LOG_LEVEL=debug    Enable debug logging")
}
