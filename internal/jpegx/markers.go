package jpegx

const (
	markerStart = 0xFF
	markerSOI   = 0xD8 // Start Of Image.
	markerEOI   = 0xD9 // End Of Image.
	markerSOS   = 0xDA // Start Of Scan.
	markerTEM   = 0x01

	markerRST0 = 0xD0
	markerRST7 = 0xD7

	markerSOF0  = 0xC0 // Baseline sequential.
	markerSOF2  = 0xC2 // Progressive, Huffman.
	markerSOF3  = 0xC3 // Lossless, Huffman.
	markerDHT   = 0xC4 // Define Huffman Table.
	markerJPG   = 0xC8
	markerSOF9  = 0xC9 // Extended sequential, arithmetic.
	markerDAC   = 0xCC // Define Arithmetic Coding conditioning.
	markerSOF15 = 0xCF
)

// isSOF reports whether marker starts a frame header.
func isSOF(marker byte) bool {
	if marker < markerSOF0 || marker > markerSOF15 {
		return false
	}
	return marker != markerDHT && marker != markerJPG && marker != markerDAC
}

func isProgressiveSOF(marker byte) bool {
	switch marker {
	case markerSOF2, 0xC6, 0xCA, 0xCE:
		return true
	default:
		return false
	}
}

// isStandalone reports whether marker carries no length-prefixed payload.
func isStandalone(marker byte) bool {
	return marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7)
}
