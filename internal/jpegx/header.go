// Package jpegx binds the image/jpeg codec to a scanline session API.
//
// A Decompressor or Compressor holds the state needed to complete one decode
// or one encode, mirroring the classic libjpeg session shape: read header,
// configure, start, move scanlines, finish. Sessions are never shared.
package jpegx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Standard errors reported by codec sessions.
var (
	ErrNotJPEG     = errors.New("not a JPEG")
	ErrUnsupported = errors.New("unsupported format")
	ErrCorrupt     = errors.New("corrupt JPEG data")
)

// Header describes the first frame found in a JPEG stream.
type Header struct {
	Width       int
	Height      int
	Precision   int // Bits per sample.
	Components  int
	Progressive bool
	// Arithmetic is set for arithmetic-coded frames, which image/jpeg can not decode.
	Arithmetic bool
	// Lossless is set for lossless frames, which image/jpeg can not decode.
	Lossless bool
}

// ReadHeader streams markers from r until the first frame header and parses it.
// Anything that is not JPEG framing up to and including SOF yields ErrNotJPEG.
func ReadHeader(r io.Reader) (Header, error) {
	br := bufio.NewReader(r)
	if err := expectSOI(br); err != nil {
		return Header{}, err
	}
	for {
		marker, err := readMarker(br)
		if err != nil {
			return Header{}, headerReadError(err)
		}
		switch {
		case marker == markerEOI || marker == markerSOS:
			return Header{}, fmt.Errorf("%w: marker 0x%02X before frame header", ErrNotJPEG, marker)
		case isSOF(marker):
			return readSOF(br, marker)
		case isStandalone(marker):
			continue
		default:
			if err := discardSegment(br); err != nil {
				return Header{}, headerReadError(err)
			}
		}
	}
}

func expectSOI(br *bufio.Reader) error {
	var soi [2]byte
	if _, err := io.ReadFull(br, soi[:]); err != nil {
		return headerReadError(err)
	}
	if soi[0] != markerStart || soi[1] != markerSOI {
		return fmt.Errorf("%w: missing SOI marker", ErrNotJPEG)
	}
	return nil
}

func readSOF(br *bufio.Reader, marker byte) (Header, error) {
	length, err := readU16(br)
	if err != nil {
		return Header{}, headerReadError(err)
	}
	if length < 8 {
		return Header{}, fmt.Errorf("%w: short frame header", ErrNotJPEG)
	}
	seg := make([]byte, length-2)
	if _, err := io.ReadFull(br, seg); err != nil {
		return Header{}, headerReadError(err)
	}

	h := Header{
		Precision:   int(seg[0]),
		Height:      int(seg[1])<<8 | int(seg[2]),
		Width:       int(seg[3])<<8 | int(seg[4]),
		Components:  int(seg[5]),
		Progressive: isProgressiveSOF(marker),
		Arithmetic:  marker >= markerSOF9,
		Lossless:    marker&0x03 == markerSOF3&0x03, // SOF3, SOF7, SOF11, SOF15.
	}
	if h.Components < 1 || len(seg) < 6+3*h.Components {
		return Header{}, fmt.Errorf("%w: invalid component count %d", ErrNotJPEG, h.Components)
	}
	if h.Width == 0 || h.Height == 0 {
		return Header{}, fmt.Errorf("%w: invalid frame size %dx%d", ErrNotJPEG, h.Width, h.Height)
	}
	return h, nil
}

func headerReadError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated header", ErrNotJPEG)
	}
	return err
}

func readMarker(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if b != markerStart {
			continue
		}
		for {
			m, err := br.ReadByte()
			if err != nil {
				return 0, err
			}
			if m != markerStart {
				return m, nil
			}
		}
	}
}

func discardSegment(br *bufio.Reader) error {
	length, err := readU16(br)
	if err != nil {
		return err
	}
	if length < 2 {
		return fmt.Errorf("%w: invalid segment length", ErrNotJPEG)
	}
	_, err = br.Discard(int(length - 2))
	return err
}

func readU16(br *bufio.Reader) (uint16, error) {
	hi, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	lo, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
