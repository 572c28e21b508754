package grayjpeg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vearutop/grayjpeg/internal/jpegx"
)

// decodeSession is the part of a codec decode session the adapter drives.
type decodeSession interface {
	ReadHeader() (jpegx.Header, error)
	SetOutputColorSpace(cs jpegx.ColorSpace)
	Start() error
	OutputWidth() int
	OutputHeight() int
	OutputScanline() int
	OutputFormat() Format
	ReadScanline(dst []uint8) error
	Finish()
}

// encodeSession is the part of a codec encode session the adapter drives.
type encodeSession interface {
	Start() error
	InputFormat() Format
	NextScanline() int
	WriteScanline(row []uint8) error
	Finish() error
	Abort()
}

// DecodeConfig reads the frame header of a JPEG stream without decoding pixels.
func DecodeConfig(r io.Reader) (Config, error) {
	h, err := jpegx.ReadHeader(r)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Width:       h.Width,
		Height:      h.Height,
		Precision:   h.Precision,
		Components:  h.Components,
		Progressive: h.Progressive,
		Arithmetic:  h.Arithmetic,
		Lossless:    h.Lossless,
	}, nil
}

// Decode converts JPEG data into a grayscale bitmap.
// Color images are converted to luma by the codec.
func Decode(data []byte) (*Bitmap, error) {
	return decode(jpegx.NewDecompressor(data))
}

func decode(d decodeSession) (*Bitmap, error) {
	defer d.Finish()

	h, err := d.ReadHeader()
	if err != nil {
		return nil, err
	}
	if h.Arithmetic || h.Lossless {
		return nil, fmt.Errorf("%w: arithmetic or lossless frame", ErrUnsupportedFormat)
	}
	if _, err := pixelCount(h.Width, h.Height); err != nil {
		return nil, err
	}

	d.SetOutputColorSpace(jpegx.ColorSpaceGrayscale)
	if err := d.Start(); err != nil {
		return nil, fmt.Errorf("start decompress: %w", err)
	}

	bm, err := NewBitmap(d.OutputWidth(), d.OutputHeight())
	if err != nil {
		return nil, err
	}

	row := make([]uint8, bm.Width)
	for d.OutputScanline() < bm.Height {
		y := d.OutputScanline()
		if err := d.ReadScanline(row); err != nil {
			return nil, fmt.Errorf("read scanline %d: %w", y, err)
		}
		if err := samplesToFloats(d.OutputFormat(), row, bm, y); err != nil {
			return nil, err
		}
	}
	return bm, nil
}

// DecodeReader reads all of r and decodes it.
func DecodeReader(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Encode converts a bitmap to a grayscale JPEG.
func Encode(bm *Bitmap, opts ...func(o *EncodeOptions)) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, bm, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes bm to w as a grayscale JPEG.
// Nothing is written to w unless every scanline converts.
func EncodeTo(w io.Writer, bm *Bitmap, opts ...func(o *EncodeOptions)) error {
	if err := bm.Validate(); err != nil {
		return err
	}
	if bm.Width > maxDimension || bm.Height > maxDimension {
		return fmt.Errorf("%w: %dx%d exceeds JPEG limit of %d", ErrInvalidDimensions, bm.Width, bm.Height, maxDimension)
	}

	opt := EncodeOptions{
		Quality:  DefaultQuality,
		Rounding: RoundTruncate,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	c := jpegx.NewCompressor(w)
	c.ImageWidth = bm.Width
	c.ImageHeight = bm.Height
	c.InputComponents = grayComponents
	c.InColorSpace = jpegx.ColorSpaceGrayscale
	c.SetDefaults()
	if opt.Quality > 0 {
		c.Quality = opt.Quality
	}

	return encode(c, bm, opt.Rounding)
}

func encode(c encodeSession, bm *Bitmap, r Rounding) error {
	defer c.Abort()

	if err := c.Start(); err != nil {
		return fmt.Errorf("start compress: %w", err)
	}

	row := make([]uint8, bm.Width)
	for c.NextScanline() < bm.Height {
		y := c.NextScanline()
		if err := floatsToSamples(c.InputFormat(), bm, y, row, r); err != nil {
			return err
		}
		if err := c.WriteScanline(row); err != nil {
			return fmt.Errorf("write scanline %d: %w", y, err)
		}
	}
	return c.Finish()
}
