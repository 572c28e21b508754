package grayjpeg

import (
	"bytes"
	"image"
	"image/jpeg"
	"math"
	"testing"
)

// grayFormat is the only sample format the normalizer accepts.
var grayFormat = Format{Precision: samplePrecision, Components: grayComponents}

func gradientBitmap(t testing.TB, w, h int) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(w, h)
	if err != nil {
		t.Fatalf("new bitmap: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bm.Set(x, y, float32(x+y)/float32(w+h))
		}
	}
	return bm
}

func encodeStdJPEG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// diffStats returns mean and max absolute difference of two equally sized bitmaps.
func diffStats(t testing.TB, a, b *Bitmap) (mean, max float64) {
	t.Helper()
	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("dims mismatch: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	var sum float64
	for i := range a.Pix {
		d := math.Abs(float64(a.Pix[i] - b.Pix[i]))
		sum += d
		if d > max {
			max = d
		}
	}
	return sum / float64(len(a.Pix)), max
}
