package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func brCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, err := br.Write(data)
	require.NoError(t, err)
	require.NoError(t, br.Close())
	return buf.Bytes()
}

func zstdCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zlibCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func rawDeflateCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	dw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = dw.Write(data)
	require.NoError(t, err)
	require.NoError(t, dw.Close())
	return buf.Bytes()
}

func TestDecodeBody(t *testing.T) {
	plain := []byte(`{"toxicity":0.91,"insult":0.88}`)

	tests := []struct {
		name            string
		contentEncoding string
		body            []byte
		expectedChanged bool
	}{
		{name: "No encoding", contentEncoding: "", body: plain, expectedChanged: false},
		{name: "Identity", contentEncoding: "identity", body: plain, expectedChanged: false},
		{name: "Gzip", contentEncoding: "gzip", body: gzipCompress(t, plain), expectedChanged: true},
		{name: "Brotli", contentEncoding: "br", body: brCompress(t, plain), expectedChanged: true},
		{name: "Zstd", contentEncoding: "zstd", body: zstdCompress(t, plain), expectedChanged: true},
		{name: "Deflate zlib wrapped", contentEncoding: "deflate", body: zlibCompress(t, plain), expectedChanged: true},
		{name: "Deflate raw", contentEncoding: "deflate", body: rawDeflateCompress(t, plain), expectedChanged: true},
		{name: "Case and whitespace", contentEncoding: "  GZIP ", body: gzipCompress(t, plain), expectedChanged: true},
		{
			name:            "Chained gzip then br",
			contentEncoding: "gzip, br",
			body:            brCompress(t, gzipCompress(t, plain)),
			expectedChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeBody(tt.contentEncoding, tt.body)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedChanged, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeBody_Errors(t *testing.T) {
	t.Run("Unknown encoding", func(t *testing.T) {
		_, _, err := DecodeBody("snappy", []byte("data"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported content-encoding")
	})

	t.Run("Corrupted gzip", func(t *testing.T) {
		_, _, err := DecodeBody("gzip", []byte("not gzip"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode gzip body")
	})
}
