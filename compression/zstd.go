package compression

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZSTDCodec builds its encoder and decoder on first use.
type ZSTDCodec struct {
	encOnce sync.Once
	encoder *zstd.Encoder
	encErr  error

	decOnce sync.Once
	decoder *zstd.Decoder
	decErr  error
}

// NewZSTDCodec creates a new ZSTD codec using pure Go implementation
func NewZSTDCodec() Codec {
	return &ZSTDCodec{}
}

func (c *ZSTDCodec) Compress(data []byte) ([]byte, error) {
	c.encOnce.Do(func() {
		c.encoder, c.encErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	})
	if c.encErr != nil {
		return nil, c.encErr
	}
	return c.encoder.EncodeAll(data, nil), nil
}

func (c *ZSTDCodec) Decompress(data []byte) ([]byte, error) {
	c.decOnce.Do(func() {
		c.decoder, c.decErr = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	})
	if c.decErr != nil {
		return nil, c.decErr
	}
	return c.decoder.DecodeAll(data, nil)
}

// Close releases the encoder and decoder if they were created.
func (c *ZSTDCodec) Close() error {
	var err error
	c.encOnce.Do(func() {})
	if c.encoder != nil {
		err = c.encoder.Close()
		c.encoder = nil
	}
	c.decOnce.Do(func() {})
	if c.decoder != nil {
		c.decoder.Close()
		c.decoder = nil
	}
	return err
}

func (c *ZSTDCodec) Type() CompressionType {
	return TypeZSTD
}

func (c *ZSTDCodec) Suffix() string {
	return "zst"
}

func (c *ZSTDCodec) Implementation() string {
	return "Pure Go (klauspost/compress/zstd)"
}
