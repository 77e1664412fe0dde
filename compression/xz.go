package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

type XZCodec struct{}

// NewXZCodec creates a new XZ codec using pure Go implementation
func NewXZCodec() Codec {
	return &XZCodec{}
}

func (c *XZCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
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

func (c *XZCodec) Decompress(data []byte) ([]byte, error) {
	reader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func (c *XZCodec) Type() CompressionType {
	return TypeXZ
}

func (c *XZCodec) Suffix() string {
	return "xz"
}

func (c *XZCodec) Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}
