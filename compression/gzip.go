package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

type GzipCodec struct {
	level int
}

// NewGzipCodec creates a gzip codec using the best compression level
func NewGzipCodec() Codec {
	return &GzipCodec{level: gzip.BestCompression}
}

func (c *GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *GzipCodec) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func (c *GzipCodec) Type() CompressionType {
	return TypeGzip
}

func (c *GzipCodec) Suffix() string {
	return "gz"
}

func (c *GzipCodec) Implementation() string {
	return "Pure Go (klauspost/compress/gzip)"
}
