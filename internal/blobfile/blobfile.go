// Package blobfile loads device tree blob files for tooling. Files are
// mapped read-only where the platform allows; zstd-compressed blobs are
// detected by their frame magic and decompressed transparently.
package blobfile

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the little-endian zstd frame magic (0xFD2FB528).
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Blob is an opened blob file. Data stays valid until Close.
type Blob struct {
	Data    []byte
	cleanup func() error
}

// Open reads the blob at path. Compressed blobs are inflated into memory;
// plain blobs reference the mapping directly.
func Open(path string) (*Blob, error) {
	data, cleanup, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("blobfile: %w", err)
	}

	if !bytes.HasPrefix(data, zstdMagic) {
		return &Blob{Data: data, cleanup: cleanup}, nil
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("blobfile: %w", err)
	}
	defer dec.Close()

	inflated, err := dec.DecodeAll(data, nil)
	if cleanErr := cleanup(); cleanErr != nil && err == nil {
		err = cleanErr
	}
	if err != nil {
		return nil, fmt.Errorf("blobfile: decompress %s: %w", path, err)
	}
	return &Blob{Data: inflated, cleanup: func() error { return nil }}, nil
}

// Close releases the file mapping. Safe to call more than once.
func (b *Blob) Close() error {
	if b.cleanup == nil {
		return nil
	}
	err := b.cleanup()
	b.cleanup = nil
	b.Data = nil
	return err
}

// Compress returns data as a zstd frame, for tools that archive blobs.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("blobfile: %w", err)
	}
	out := enc.EncodeAll(data, nil)
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("blobfile: %w", err)
	}
	return out, nil
}
