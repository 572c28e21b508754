package grayjpeg

import (
	"errors"
	"math"
	"testing"
)

func TestResizeInterpolations(t *testing.T) {
	src, err := NewBitmap(60, 40)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src.Pix {
		src.Pix[i] = 0.25
	}

	for name, interp := range interpolationNames {
		t.Run(name, func(t *testing.T) {
			got, err := Resize(src, 30, 20, interp)
			if err != nil {
				t.Fatalf("resize: %v", err)
			}
			if got.Width != 30 || got.Height != 20 {
				t.Fatalf("unexpected size %dx%d", got.Width, got.Height)
			}
			for i, v := range got.Pix {
				if math.Abs(float64(v)-0.25) > 4.0/65535 {
					t.Fatalf("sample %d drifted to %v", i, v)
				}
			}
		})
	}
}

func TestResizeKeepsAspect(t *testing.T) {
	src := gradientBitmap(t, 80, 40)

	got, err := Resize(src, 40, 0, InterpolationBilinear)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if got.Width != 40 || got.Height != 20 {
		t.Fatalf("unexpected size %dx%d", got.Width, got.Height)
	}

	got, err = Resize(src, 0, 10, InterpolationNearest)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if got.Width != 20 || got.Height != 10 {
		t.Fatalf("unexpected size %dx%d", got.Width, got.Height)
	}
}

func TestResizeInvalid(t *testing.T) {
	src := gradientBitmap(t, 8, 8)
	if _, err := Resize(src, 0, 0, InterpolationBilinear); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Resize(src, 4, 4, Interpolation(42)); err == nil {
		t.Fatal("expected error for unknown interpolation")
	}
	if _, err := Resize(&Bitmap{Width: 2, Height: 2}, 4, 4, InterpolationBilinear); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestParseInterpolation(t *testing.T) {
	interp, err := ParseInterpolation("lanczos3")
	if err != nil {
		t.Fatal(err)
	}
	if interp != InterpolationLanczos3 {
		t.Fatalf("unexpected interpolation %d", interp)
	}
	if _, err := ParseInterpolation("sinc"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}
