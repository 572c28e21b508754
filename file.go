package grayjpeg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile encodes bm and writes it to path with mode 0644.
// The file is not touched if encoding fails.
func WriteFile(path string, bm *Bitmap, opts ...func(o *EncodeOptions)) error {
	data, err := Encode(bm, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return ioError("open", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return ioError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return ioError("close", path, err)
	}
	return nil
}

// ReadFile reads a JPEG file into a bitmap.
func ReadFile(path string) (*Bitmap, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func readFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	fi, err := os.Stat(path)
	if err != nil {
		return nil, ioError("stat", path, err)
	}
	if fi.IsDir() {
		return nil, ioError("stat", path, errors.New("is a directory"))
	}

	data := make([]byte, fi.Size())
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	if _, err := io.ReadFull(f, data); err != nil {
		return nil, ioError("read", path, err)
	}
	return data, nil
}
