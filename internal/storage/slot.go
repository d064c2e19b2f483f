package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Slot is one named durable location holding the full serialized database
// image. The image bytes are re-encoded as text for storage; reading decodes
// the text back into the exact byte sequence that was written.
type Slot interface {
	// Write replaces any previous value with the given image bytes.
	Write(data []byte) error

	// Read returns the stored image bytes, or (nil, nil) if never written.
	Read() ([]byte, error)
}

// FileSlot stores the image as base64 text in a single file. Writes go
// through a temp file and rename so the slot is never left half-written.
type FileSlot struct {
	path string
}

// NewFileSlot returns a FileSlot backed by the given file path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Write(data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(encoded), 0o660); err != nil {
		return fmt.Errorf("write slot %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace slot %s: %w", s.path, err)
	}
	return nil
}

func (s *FileSlot) Read() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.path, err)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", s.path, err)
	}
	return data, nil
}
