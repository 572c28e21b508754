package grayjpeg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
)

// Raw bitmaps are a zstd stream of: magic, uint32 BE width, uint32 BE height,
// then Width*Height float32 samples as little-endian IEEE 754 bits.
var rawMagic = []byte("GFB1")

const rawHeaderSize = 12

// WriteRaw stores bm losslessly.
func WriteRaw(w io.Writer, bm *Bitmap) error {
	if err := bm.Validate(); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return err
	}

	hdr := make([]byte, rawHeaderSize)
	copy(hdr, rawMagic)
	binary.BigEndian.PutUint32(hdr[4:], uint32(bm.Width))
	binary.BigEndian.PutUint32(hdr[8:], uint32(bm.Height))
	if _, err := enc.Write(hdr); err != nil {
		_ = enc.Close()
		return err
	}

	row := make([]byte, 4*bm.Width)
	for y := 0; y < bm.Height; y++ {
		for x, v := range bm.Row(y) {
			binary.LittleEndian.PutUint32(row[4*x:], math.Float32bits(v))
		}
		if _, err := enc.Write(row); err != nil {
			_ = enc.Close()
			return err
		}
	}
	return enc.Close()
}

// ReadRaw loads a bitmap stored by WriteRaw.
func ReadRaw(r io.Reader) (*Bitmap, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	hdr := make([]byte, rawHeaderSize)
	if _, err := io.ReadFull(dec, hdr); err != nil {
		return nil, fmt.Errorf("%w: raw header: %v", ErrCorrupt, err)
	}
	if !bytes.Equal(hdr[:4], rawMagic) {
		return nil, fmt.Errorf("%w: bad raw bitmap magic %q", ErrCorrupt, hdr[:4])
	}
	width := binary.BigEndian.Uint32(hdr[4:])
	height := binary.BigEndian.Uint32(hdr[8:])
	if width > MaxPixels || height > MaxPixels {
		return nil, fmt.Errorf("%w: raw bitmap %dx%d", ErrCorrupt, width, height)
	}

	bm, err := NewBitmap(int(width), int(height))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	row := make([]byte, 4*bm.Width)
	for y := 0; y < bm.Height; y++ {
		if _, err := io.ReadFull(dec, row); err != nil {
			return nil, fmt.Errorf("%w: raw row %d: %v", ErrCorrupt, y, err)
		}
		out := bm.Row(y)
		for x := range out {
			out[x] = math.Float32frombits(binary.LittleEndian.Uint32(row[4*x:]))
		}
	}
	return bm, nil
}

// WriteRawFile stores bm losslessly at path.
func WriteRawFile(path string, bm *Bitmap) error {
	var buf bytes.Buffer
	if err := WriteRaw(&buf, bm); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return writeFile(path, buf.Bytes())
}

// ReadRawFile loads a bitmap stored by WriteRawFile.
func ReadRawFile(path string) (*Bitmap, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ReadRaw(bytes.NewReader(data))
}
