package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// DecodeBody decodes a response body according to its Content-Encoding header value.
// Chained encodings ("gzip, br") are undone in reverse order. Supported: br, gzip, zstd and
// deflate (zlib wrapped or raw). It reports whether the body changed.
func DecodeBody(contentEncoding string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}

	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		encoding := strings.TrimSpace(strings.ToLower(encodings[i]))

		var (
			out []byte
			err error
		)
		switch encoding {
		case "br":
			out, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "gzip", "x-gzip":
			out, err = gunzip(body)
		case "zstd":
			out, err = unzstd(body)
		case "deflate":
			out, err = inflate(body)
		case "", "identity", "compress":
			continue
		default:
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", encodings[i])
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode %s body: %w", encoding, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func gunzip(body []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return io.ReadAll(gr)
}

func unzstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

func inflate(body []byte) ([]byte, error) {
	// RFC 9110 deflate is zlib wrapped, some servers send raw DEFLATE anyway.
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		defer zr.Close()
		return io.ReadAll(zr)
	}
	fr := flate.NewReader(bytes.NewReader(body))
	defer fr.Close()
	return io.ReadAll(fr)
}
