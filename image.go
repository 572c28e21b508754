package grayjpeg

import (
	"image"
	"image/color"
)

// Gray returns an 8-bit copy of the bitmap, quantized by truncation.
// An invalid bitmap yields an empty image.
func (b *Bitmap) Gray() *image.Gray {
	if b.Validate() != nil {
		return image.NewGray(image.Rectangle{})
	}
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		off := img.PixOffset(0, y)
		packRow(b.Row(y), img.Pix[off:off+b.Width], RoundTruncate)
	}
	return img
}

// Gray16 returns a 16-bit copy of the bitmap, rounded to nearest.
// An invalid bitmap yields an empty image.
func (b *Bitmap) Gray16() *image.Gray16 {
	if b.Validate() != nil {
		return image.NewGray16(image.Rectangle{})
	}
	img := image.NewGray16(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x, v := range b.Row(y) {
			img.SetGray16(x, y, color.Gray16{Y: uint16(clamp01(v)*65535 + 0.5)})
		}
	}
	return img
}

// FromImage converts any image to a bitmap using its luma.
func FromImage(img image.Image) (*Bitmap, error) {
	r := img.Bounds()
	bm, err := NewBitmap(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < bm.Height; y++ {
			off := src.PixOffset(r.Min.X, r.Min.Y+y)
			unpackRow(src.Pix[off:off+bm.Width], bm.Row(y))
		}
	case *image.Gray16:
		for y := 0; y < bm.Height; y++ {
			out := bm.Row(y)
			for x := range out {
				out[x] = float32(src.Gray16At(r.Min.X+x, r.Min.Y+y).Y) / 65535
			}
		}
	default:
		for y := 0; y < bm.Height; y++ {
			out := bm.Row(y)
			for x := range out {
				out[x] = float32(grayAt(img, r.Min.X+x, r.Min.Y+y)) / sampleMax
			}
		}
	}
	return bm, nil
}

func grayAt(img image.Image, x, y int) uint8 {
	c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
	return c.Y
}
