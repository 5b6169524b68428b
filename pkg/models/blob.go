package models

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/chardetect/chardet-core/internal/bigram"
)

// Magic and Version identify the models.bin wire format (spec §6):
//
//	magic(4)="CHMD" | version(u16) | count(u32) | [entry]*
//	entry = key_len(u16) | key(UTF-8, no NUL) | table(65536 x u8) | norm(f32 LE)
const (
	Magic         = "CHMD"
	FormatVersion = uint16(1)
)

// ErrMalformedModel is the sentinel returned when a blob fails the
// magic/version check (spec §7: "MalformedModel ... propagates as a
// process-wide initialization failure"). Callers should check with
// errors.Is.
var ErrMalformedModel = errors.New("models: malformed model blob")

// WriteBlob serializes models in the models.bin wire format, mirroring
// axiomhq-fsst's Table.WriteTo: a fixed magic/version header followed by
// a flat sequence of length-prefixed entries, all little-endian.
func WriteBlob(w io.Writer, models []*bigram.Model) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, FormatVersion); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(models))); err != nil {
		return err
	}

	for _, m := range models {
		key := m.Key()
		if len(key) > 0xFFFF {
			return fmt.Errorf("models: key %q too long to encode", key)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(key))); err != nil {
			return err
		}
		if _, err := bw.WriteString(key); err != nil {
			return err
		}
		if _, err := bw.Write(m.Table[:]); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, m.Norm); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadBlob parses the models.bin wire format. On a magic or version
// mismatch it returns ErrMalformedModel wrapped with details (spec §7).
func ReadBlob(r io.Reader) ([]*bigram.Model, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrMalformedModel, err)
	}
	if string(magic) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedModel, magic)
	}

	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrMalformedModel, err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedModel, version)
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading count: %v", ErrMalformedModel, err)
	}

	out := make([]*bigram.Model, 0, count)
	for i := uint32(0); i < count; i++ {
		m, err := readEntry(br)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedModel, i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func readEntry(br *bufio.Reader) (*bigram.Model, error) {
	var keyLen uint16
	if err := binary.Read(br, binary.LittleEndian, &keyLen); err != nil {
		return nil, err
	}
	keyBuf := make([]byte, keyLen)
	if _, err := io.ReadFull(br, keyBuf); err != nil {
		return nil, err
	}

	m := &bigram.Model{}
	lang, enc, err := splitKey(string(keyBuf))
	if err != nil {
		return nil, err
	}
	m.Language, m.Encoding = lang, enc

	if _, err := io.ReadFull(br, m.Table[:]); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.LittleEndian, &m.Norm); err != nil {
		return nil, err
	}
	return m, nil
}

func splitKey(key string) (lang, enc string, err error) {
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			return key[:i], key[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("key %q missing language/encoding separator", key)
}
