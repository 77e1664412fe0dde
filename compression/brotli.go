package compression

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

type BrotliCodec struct{}

// NewBrotliCodec creates a new Brotli codec using pure Go implementation
func NewBrotliCodec() Codec {
	return &BrotliCodec{}
}

func (c *BrotliCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *BrotliCodec) Decompress(data []byte) ([]byte, error) {
	reader := brotli.NewReader(bytes.NewReader(data))
	return io.ReadAll(reader)
}

func (c *BrotliCodec) Type() CompressionType {
	return TypeBrotli
}

func (c *BrotliCodec) Suffix() string {
	return "br"
}

func (c *BrotliCodec) Implementation() string {
	return "Pure Go (andybalholm/brotli)"
}
