package ihex

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// SaveHex writes the Intel HEX text of the image to w.
func (img *Image) SaveHex(w io.Writer, opts ...Option) error {
	text := img.HexText()
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing hex data: %w", err)
	}

	cfg := newConfig(opts)
	if cfg.Logger != nil {
		cfg.Logger.Debug("Saved hex image", log.Int("size", len(text)))
	}
	return nil
}

// SaveBinary writes the flat binary projection of the image to w. Only data
// record payloads are written, the end of file record contributes nothing.
func (img *Image) SaveBinary(w io.Writer, opts ...Option) error {
	data := img.BinaryText()
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing binary data: %w", err)
	}

	cfg := newConfig(opts)
	if cfg.Logger != nil {
		cfg.Logger.Debug("Saved binary image", log.Int("size", len(data)))
	}
	return nil
}

// SaveHexFile writes the Intel HEX text of the image to a file.
func (img *Image) SaveHexFile(path string, opts ...Option) error {
	return saveFile(path, func(w io.Writer) error {
		return img.SaveHex(w, opts...)
	})
}

// SaveBinaryFile writes the flat binary projection of the image to a file.
func (img *Image) SaveBinaryFile(path string, opts ...Option) error {
	return saveFile(path, func(w io.Writer) error {
		return img.SaveBinary(w, opts...)
	})
}

func saveFile(path string, save func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file '%s': %w", path, closeErr)
		}
	}()

	return save(f)
}
