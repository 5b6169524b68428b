//go:build unix

package models

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// LoadFile memory-maps path and parses it as a models.bin blob (spec §4.2:
// "The store is memory-mapped or read once"). The mapping is read once to
// parse profiles into Go-owned Model values, then unmapped immediately —
// profiles are plain Go arrays after that, not backed by the mapping, so
// there's no lifetime coupling between the returned Store and the file.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("models: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("models: stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: empty file %s", ErrMalformedModel, path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("models: mmap %s: %w", path, err)
	}
	defer unix.Munmap(data)

	all, err := ReadBlob(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return New(all), nil
}
