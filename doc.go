// Package grayjpeg converts between JPEG data and normalized grayscale float32 bitmaps.
//
// JPEG coding is delegated to the standard image/jpeg package through a scanline session
// layer. This package validates sample formats, maps 8-bit samples to floats in [0, 1] and
// back, and reads and writes whole files. Color JPEGs are reduced to luma by the codec
// before any sample reaches the bitmap.
package grayjpeg
