package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	payload := bytes.Repeat([]byte(`{"isEnabled":true,"selectedApps":[]}`), 100)
	compressed, err := compressor.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))

	restored, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestZstdCompressor_DecompressRejectsPlainData(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	_, err = compressor.Decompress([]byte("plain json"))
	assert.Error(t, err)
}
