package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vearutop/grayjpeg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "info":
		err = runInfo(args[1:], stdout, stderr)
	case "roundtrip":
		err = runRoundTrip(args[1:], stderr)
	case "resize":
		err = runResize(args[1:], stderr)
	case "dump":
		err = runDump(args[1:], stderr)
	case "restore":
		err = runRestore(args[1:], stderr)
	default:
		usage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: grayjpeg <command> [args]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info      -in input.jpg")
	fmt.Fprintln(w, "  roundtrip -in input.jpg -out output.jpg [-q 75] [-round]")
	fmt.Fprintln(w, "  resize    -in input.jpg -out output.jpg -w 800 [-h 600] [-interp bilinear] [-q 75]")
	fmt.Fprintln(w, "  dump      -in input.jpg -out bitmap.gfb")
	fmt.Fprintln(w, "  restore   -in bitmap.gfb -out output.jpg [-q 75] [-round]")
}

func encodeOptions(quality int, round bool) func(o *grayjpeg.EncodeOptions) {
	return func(o *grayjpeg.EncodeOptions) {
		o.Quality = quality
		if round {
			o.Rounding = grayjpeg.RoundNearest
		}
	}
}

func runInfo(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()
	cfg, err := grayjpeg.DecodeConfig(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%dx%d, %d-bit, %d components", cfg.Width, cfg.Height, cfg.Precision, cfg.Components)
	if cfg.Progressive {
		fmt.Fprint(stdout, ", progressive")
	}
	if cfg.Arithmetic {
		fmt.Fprint(stdout, ", arithmetic")
	}
	if cfg.Lossless {
		fmt.Fprint(stdout, ", lossless")
	}
	fmt.Fprintln(stdout)
	return nil
}

func runRoundTrip(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG")
	outPath := fs.String("out", "", "output grayscale JPEG")
	q := fs.Int("q", grayjpeg.DefaultQuality, "quality")
	round := fs.Bool("round", false, "round samples to nearest instead of truncating")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	bm, err := grayjpeg.ReadFile(*inPath)
	if err != nil {
		return err
	}
	return grayjpeg.WriteFile(*outPath, bm, encodeOptions(*q, *round))
}

func runResize(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG")
	outPath := fs.String("out", "", "output grayscale JPEG")
	width := fs.Uint("w", 0, "target width, 0 keeps aspect ratio")
	height := fs.Uint("h", 0, "target height, 0 keeps aspect ratio")
	interpName := fs.String("interp", "bilinear", "interpolation: nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3")
	q := fs.Int("q", grayjpeg.DefaultQuality, "quality")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || (*width == 0 && *height == 0) {
		return errors.New("missing required arguments")
	}
	interp, err := grayjpeg.ParseInterpolation(*interpName)
	if err != nil {
		return err
	}
	bm, err := grayjpeg.ReadFile(*inPath)
	if err != nil {
		return err
	}
	resized, err := grayjpeg.Resize(bm, *width, *height, interp)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	return grayjpeg.WriteFile(*outPath, resized, encodeOptions(*q, false))
}

func runDump(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG")
	outPath := fs.String("out", "", "output raw bitmap")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	bm, err := grayjpeg.ReadFile(*inPath)
	if err != nil {
		return err
	}
	return grayjpeg.WriteRawFile(*outPath, bm)
}

func runRestore(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	inPath := fs.String("in", "", "input raw bitmap")
	outPath := fs.String("out", "", "output grayscale JPEG")
	q := fs.Int("q", grayjpeg.DefaultQuality, "quality")
	round := fs.Bool("round", false, "round samples to nearest instead of truncating")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	bm, err := grayjpeg.ReadRawFile(*inPath)
	if err != nil {
		return err
	}
	return grayjpeg.WriteFile(*outPath, bm, encodeOptions(*q, *round))
}
