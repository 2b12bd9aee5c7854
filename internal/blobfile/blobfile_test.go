package blobfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.bin")
	payload := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	b, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, payload, b.Data)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close(), "Close must be idempotent")
}

func TestOpenCompressed(t *testing.T) {
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i)
	}
	frame, err := Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(frame), len(payload))

	path := filepath.Join(t.TempDir(), "blob.zst")
	require.NoError(t, os.WriteFile(path, frame, 0o644))

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()
	require.Equal(t, payload, b.Data)
}

func TestOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()
	require.Empty(t, b.Data)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestOpenCorruptFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zst")
	// Valid magic, garbage frame body.
	require.NoError(t, os.WriteFile(path, append(append([]byte(nil), zstdMagic...), 0xDE, 0xAD), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}
