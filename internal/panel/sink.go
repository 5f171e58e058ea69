package panel

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FileSink writes each frame as a PNG file.
type FileSink struct {
	Path string
}

// Init creates the output directory.
func (s *FileSink) Init() error {
	return ensureDir(s.Path)
}

// Display encodes img and atomically replaces the file at Path.
func (s *FileSink) Display(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return writeAtomic(s.Path, buf.Bytes())
}

// Sleep is a no-op for files.
func (s *FileSink) Sleep() error { return nil }

// RawSink writes the packed panel buffer, as produced by Pack, to Path.
// Path may be a regular file or a device node.
type RawSink struct {
	Path string
	// Width and Height are the panel's native resolution.
	Width  int
	Height int
}

// Init creates the output directory for regular files.
func (s *RawSink) Init() error {
	if isDevice(s.Path) {
		return nil
	}
	return ensureDir(s.Path)
}

// Display packs img and writes it.
func (s *RawSink) Display(img image.Image) error {
	buf, err := Pack(img, s.Width, s.Height)
	if err != nil {
		return err
	}
	if isDevice(s.Path) {
		f, err := os.OpenFile(s.Path, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("opening panel device: %w", err)
		}
		if _, err := f.Write(buf); err != nil {
			f.Close()
			return fmt.Errorf("writing panel device: %w", err)
		}
		return f.Close()
	}
	return writeAtomic(s.Path, buf)
}

// Sleep is a no-op; the device driver powers the panel down after a refresh.
func (s *RawSink) Sleep() error { return nil }

func isDevice(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode()&os.ModeDevice != 0
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// writeAtomic writes to a temp file then renames it over path.
func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
