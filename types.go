package grayjpeg

import (
	"fmt"

	"github.com/vearutop/grayjpeg/internal/jpegx"
)

// Bitmap stores a grayscale image as row-major float32 samples.
// Values are normalized to [0, 1], 1.0 being full white.
type Bitmap struct {
	Width  int
	Height int
	Pix    []float32 // len(Pix) == Width*Height
}

// NewBitmap allocates a zeroed bitmap.
func NewBitmap(width, height int) (*Bitmap, error) {
	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]float32, n),
	}, nil
}

func pixelCount(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxPixels/height {
		return 0, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, MaxPixels)
	}
	return width * height, nil
}

// Validate checks dimensions against the pixel buffer.
func (b *Bitmap) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil bitmap", ErrInvalidDimensions)
	}
	n, err := pixelCount(b.Width, b.Height)
	if err != nil {
		return err
	}
	if len(b.Pix) != n {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidDimensions, len(b.Pix), b.Width, b.Height)
	}
	return nil
}

// Row returns the samples of row y, sharing storage with b.
func (b *Bitmap) Row(y int) []float32 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// At returns the sample at x, y.
func (b *Bitmap) At(x, y int) float32 {
	return b.Pix[y*b.Width+x]
}

// Set stores the sample at x, y.
func (b *Bitmap) Set(x, y int, v float32) {
	b.Pix[y*b.Width+x] = v
}

// Format is the sample format of a codec session.
type Format = jpegx.Format

// Config describes a JPEG frame without decoding it.
type Config struct {
	Width       int
	Height      int
	Precision   int // Bits per sample.
	Components  int // Components stored in the file, before grayscale conversion.
	Progressive bool
	Arithmetic  bool // Arithmetic entropy coding, Decode rejects it.
	Lossless    bool // Lossless process, Decode rejects it.
}

// Rounding selects how floats are quantized to 8-bit samples.
type Rounding int

const (
	// RoundTruncate drops the fraction, so intermediate values may come back one step lower.
	RoundTruncate Rounding = iota
	// RoundNearest rounds half up, making sample->float->sample exact.
	RoundNearest
)

// EncodeOptions controls JPEG encoding.
type EncodeOptions struct {
	Quality  int      // JPEG quality (1-100), DefaultQuality if 0.
	Rounding Rounding // float to sample quantization.
}
