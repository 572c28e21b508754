package jpegx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
)

// DefaultQuality matches the libjpeg default applied by jpeg_set_defaults.
const DefaultQuality = 75

// ColorSpace identifies the sample layout of scanlines crossing a session.
type ColorSpace int

const (
	// ColorSpaceUnset is the zero value, no scanlines can cross a session in it.
	ColorSpaceUnset ColorSpace = iota
	// ColorSpaceGrayscale is one luma sample per pixel.
	ColorSpaceGrayscale
)

func (cs ColorSpace) components() int {
	if cs == ColorSpaceGrayscale {
		return 1
	}
	return 0
}

// Format is the sample format a session reports for its scanlines.
type Format struct {
	Precision  int // Bits per sample.
	Components int // Samples per pixel.
}

// Decompressor is a single decode session.
//
// image/jpeg decodes whole images, so Start runs the codec and ReadScanline
// serves luma rows from the decoded frame.
type Decompressor struct {
	data     []byte
	header   Header
	parsed   bool
	outSpace ColorSpace
	img      image.Image
	scanline int
}

// NewDecompressor creates a decode session reading from an in-memory JPEG.
func NewDecompressor(data []byte) *Decompressor {
	return &Decompressor{data: data}
}

// ReadHeader parses the frame header.
func (d *Decompressor) ReadHeader() (Header, error) {
	h, err := ReadHeader(bytes.NewReader(d.data))
	if err != nil {
		return Header{}, err
	}
	d.header = h
	d.parsed = true
	return h, nil
}

// SetOutputColorSpace selects the color space of scanlines returned by ReadScanline.
func (d *Decompressor) SetOutputColorSpace(cs ColorSpace) {
	d.outSpace = cs
}

// Start decodes the frame.
func (d *Decompressor) Start() error {
	if !d.parsed {
		return errors.New("start before header")
	}
	if d.img != nil {
		return errors.New("decompression already started")
	}
	if d.outSpace != ColorSpaceGrayscale {
		return fmt.Errorf("%w: output color space %d", ErrUnsupported, d.outSpace)
	}

	img, err := jpeg.Decode(bytes.NewReader(d.data))
	if err != nil {
		return codecError(err)
	}
	d.img = img
	return nil
}

// OutputWidth is the width of decoded scanlines in pixels.
func (d *Decompressor) OutputWidth() int {
	if d.img != nil {
		return d.img.Bounds().Dx()
	}
	return d.header.Width
}

// OutputHeight is the number of scanlines to read.
func (d *Decompressor) OutputHeight() int {
	if d.img != nil {
		return d.img.Bounds().Dy()
	}
	return d.header.Height
}

// OutputScanline is the index of the next scanline ReadScanline returns.
func (d *Decompressor) OutputScanline() int {
	return d.scanline
}

// OutputFormat reports precision and component count of decoded scanlines.
func (d *Decompressor) OutputFormat() Format {
	return Format{Precision: d.header.Precision, Components: d.outSpace.components()}
}

// ReadScanline fills dst with the next decoded row of OutputWidth samples.
func (d *Decompressor) ReadScanline(dst []uint8) error {
	if d.img == nil {
		return errors.New("read scanline before start")
	}
	b := d.img.Bounds()
	if d.scanline >= b.Dy() {
		return io.EOF
	}
	w := b.Dx()
	if len(dst) < w {
		return fmt.Errorf("scanline buffer too small: %d < %d", len(dst), w)
	}

	grayRow(d.img, b.Min.Y+d.scanline, dst[:w])
	d.scanline++
	return nil
}

// grayRow writes luma for row y, using the Y plane directly when the codec kept one.
func grayRow(img image.Image, y int, dst []uint8) {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.Gray:
		off := src.PixOffset(b.Min.X, y)
		copy(dst, src.Pix[off:off+len(dst)])
	case *image.YCbCr:
		off := src.YOffset(b.Min.X, y)
		copy(dst, src.Y[off:off+len(dst)])
	default:
		for x := range dst {
			dst[x] = color.GrayModel.Convert(img.At(b.Min.X+x, y)).(color.Gray).Y
		}
	}
}

// Finish releases the decoded frame. It is safe to call more than once.
func (d *Decompressor) Finish() {
	d.img = nil
	d.data = nil
}

// Compressor is a single encode session producing a grayscale JPEG.
//
// Scanlines are collected into a frame and handed to image/jpeg on Finish,
// nothing is written to the destination before that.
type Compressor struct {
	ImageWidth      int
	ImageHeight     int
	InputComponents int
	InColorSpace    ColorSpace
	Quality         int

	w         io.Writer
	precision int
	img       *image.Gray
	next      int
}

// NewCompressor creates an encode session writing to w.
func NewCompressor(w io.Writer) *Compressor {
	return &Compressor{w: w}
}

// SetDefaults applies the standard parameter set.
func (c *Compressor) SetDefaults() {
	c.Quality = DefaultQuality
	c.precision = 8
}

// InputFormat reports the sample format expected by WriteScanline.
func (c *Compressor) InputFormat() Format {
	return Format{Precision: c.precision, Components: c.InputComponents}
}

// Start validates parameters and prepares the frame.
func (c *Compressor) Start() error {
	if c.img != nil {
		return errors.New("compression already started")
	}
	if c.ImageWidth <= 0 || c.ImageHeight <= 0 || c.ImageWidth > 0xFFFF || c.ImageHeight > 0xFFFF {
		return fmt.Errorf("invalid image size %dx%d", c.ImageWidth, c.ImageHeight)
	}
	if c.InputComponents != 1 || c.InColorSpace != ColorSpaceGrayscale {
		return fmt.Errorf("%w: %d components in color space %d", ErrUnsupported, c.InputComponents, c.InColorSpace)
	}
	if c.precision == 0 {
		c.precision = 8
	}
	if c.Quality <= 0 {
		c.Quality = DefaultQuality
	}
	c.img = image.NewGray(image.Rect(0, 0, c.ImageWidth, c.ImageHeight))
	c.next = 0
	return nil
}

// NextScanline is the index of the row WriteScanline stores next.
func (c *Compressor) NextScanline() int {
	return c.next
}

// WriteScanline stores one row of ImageWidth samples.
func (c *Compressor) WriteScanline(row []uint8) error {
	if c.img == nil {
		return errors.New("write scanline before start")
	}
	if c.next >= c.ImageHeight {
		return errors.New("too many scanlines")
	}
	if len(row) < c.ImageWidth {
		return fmt.Errorf("short scanline: %d < %d", len(row), c.ImageWidth)
	}
	off := c.img.PixOffset(0, c.next)
	copy(c.img.Pix[off:off+c.ImageWidth], row)
	c.next++
	return nil
}

// Finish encodes the collected frame to the destination and ends the session.
func (c *Compressor) Finish() error {
	if c.img == nil {
		return errors.New("finish before start")
	}
	defer c.Abort()
	if c.next != c.ImageHeight {
		return fmt.Errorf("incomplete image: %d of %d scanlines", c.next, c.ImageHeight)
	}
	if err := jpeg.Encode(c.w, c.img, &jpeg.Options{Quality: c.Quality}); err != nil {
		return err
	}
	return nil
}

// Abort drops the session without writing. It is safe to call after Finish.
func (c *Compressor) Abort() {
	c.img = nil
}

func codecError(err error) error {
	var ue jpeg.UnsupportedError
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %s", ErrUnsupported, string(ue))
	}
	var fe jpeg.FormatError
	if errors.As(err, &fe) {
		return fmt.Errorf("%w: %s", ErrCorrupt, string(fe))
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return err
}
