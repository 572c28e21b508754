package grayjpeg

import (
	"fmt"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling kernel.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

var interpolationNames = map[string]Interpolation{
	"nearest":  InterpolationNearest,
	"bilinear": InterpolationBilinear,
	"bicubic":  InterpolationBicubic,
	"mitchell": InterpolationMitchellNetravali,
	"lanczos2": InterpolationLanczos2,
	"lanczos3": InterpolationLanczos3,
}

// ParseInterpolation maps a name like "bilinear" or "lanczos3" to Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	interp, ok := interpolationNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown interpolation %q", name)
	}
	return interp, nil
}

func (i Interpolation) kernel() (resize.InterpolationFunction, error) {
	switch i {
	case InterpolationNearest:
		return resize.NearestNeighbor, nil
	case InterpolationBilinear:
		return resize.Bilinear, nil
	case InterpolationBicubic:
		return resize.Bicubic, nil
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali, nil
	case InterpolationLanczos2:
		return resize.Lanczos2, nil
	case InterpolationLanczos3:
		return resize.Lanczos3, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %d", i)
	}
}

// Resize resamples bm to width x height.
// If one of the dimensions is 0, it is derived from the other preserving aspect ratio.
func Resize(bm *Bitmap, width, height uint, interp Interpolation) (*Bitmap, error) {
	if err := bm.Validate(); err != nil {
		return nil, err
	}
	if width == 0 && height == 0 {
		return nil, fmt.Errorf("%w: target 0x0", ErrInvalidDimensions)
	}
	if width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, width, height)
	}
	kernel, err := interp.kernel()
	if err != nil {
		return nil, err
	}

	if width == 0 {
		width = aspectSize(height, bm.Width, bm.Height)
	}
	if height == 0 {
		height = aspectSize(width, bm.Height, bm.Width)
	}
	if _, err := pixelCount(int(width), int(height)); err != nil {
		return nil, err
	}

	return FromImage(resize.Resize(width, height, bm.Gray16(), kernel))
}

func aspectSize(other uint, num, den int) uint {
	v := uint(float64(other)*float64(num)/float64(den) + 0.5)
	if v == 0 {
		v = 1
	}
	return v
}
