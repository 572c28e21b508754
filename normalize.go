package grayjpeg

import "fmt"

func checkFormat(f Format) error {
	if f.Precision != samplePrecision || f.Components != grayComponents {
		return fmt.Errorf("%w: %d-bit samples with %d components", ErrUnsupportedFormat, f.Precision, f.Components)
	}
	return nil
}

// samplesToFloats writes one scanline of 8-bit samples into row y of dst.
func samplesToFloats(f Format, row []uint8, dst *Bitmap, y int) error {
	if err := checkFormat(f); err != nil {
		return err
	}
	unpackRow(row, dst.Row(y))
	return nil
}

// floatsToSamples quantizes row y of src into 8-bit samples.
func floatsToSamples(f Format, src *Bitmap, y int, row []uint8, r Rounding) error {
	if err := checkFormat(f); err != nil {
		return err
	}
	packRow(src.Row(y), row, r)
	return nil
}

// unpackRow fills out from the first len(out) samples of row.
func unpackRow(row []uint8, out []float32) {
	for x, s := range row[:len(out)] {
		out[x] = float32(s) / sampleMax
	}
}

// packRow quantizes in into the first len(in) samples of row.
func packRow(in []float32, row []uint8, r Rounding) {
	if r == RoundNearest {
		for x, v := range in {
			row[x] = uint8(clamp01(v)*sampleMax + 0.5)
		}
		return
	}
	for x, v := range in {
		row[x] = uint8(clamp01(v) * sampleMax)
	}
}

// clamp01 also maps NaN to 0.
func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
