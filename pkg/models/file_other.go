//go:build !unix

package models

import (
	"bytes"
	"fmt"
	"os"
)

// LoadFile reads path fully and parses it as a models.bin blob. Non-unix
// builds skip the mmap fast path (see file_unix.go) and fall back to a
// plain read, per spec §4.2's "memory-mapped or read once."
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("models: reading %s: %w", path, err)
	}
	all, err := ReadBlob(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return New(all), nil
}
