package grayjpeg

import "github.com/vearutop/grayjpeg/internal/jpegx"

const (
	samplePrecision = 8
	grayComponents  = 1
	sampleMax       = 255.0
)

const (
	// DefaultQuality is the codec default JPEG quality.
	DefaultQuality = jpegx.DefaultQuality

	// MaxPixels limits the size of a bitmap that can be allocated.
	MaxPixels = 1 << 28
)

const (
	fileMode     = 0o644
	maxDimension = 0xFFFF // Frame header stores 16-bit sizes.
)
