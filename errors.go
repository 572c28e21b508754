package grayjpeg

import (
	"errors"
	"io/fs"

	"github.com/vearutop/grayjpeg/internal/jpegx"
)

// Standard errors, use errors.Is to check kinds.
var (
	// ErrNotAJPEG means the data does not start with valid JPEG framing up to the frame header.
	ErrNotAJPEG = jpegx.ErrNotJPEG
	// ErrUnsupportedFormat means samples are not 8-bit single-channel after color conversion.
	ErrUnsupportedFormat = jpegx.ErrUnsupported
	// ErrCorrupt means the header was valid but the rest of the data could not be decoded.
	ErrCorrupt = jpegx.ErrCorrupt
	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("i/o error")
	// ErrEncodeFailed means a bitmap could not be encoded before writing a file.
	ErrEncodeFailed = errors.New("encode failed")
	// ErrAllocation means the requested bitmap exceeds MaxPixels.
	ErrAllocation = errors.New("bitmap too large")
	// ErrInvalidDimensions means width or height is not positive or does not match the pixel buffer.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

// IOError reports a failed file operation together with the OS error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the OS error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes every IOError match ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioError(op, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
