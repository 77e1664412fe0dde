// Package compression provides the codecs used to pack rendered bitmaps on disk.
package compression

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

type CompressionType int

// The zero value is gzip, the only format the firmware loader reads.
const (
	TypeGzip CompressionType = iota
	TypeZSTD
	TypeXZ
	TypeBrotli
	TypeNone
)

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeGzip:
		return "gzip"
	case TypeZSTD:
		return "zstd"
	case TypeXZ:
		return "xz"
	case TypeBrotli:
		return "brotli"
	case TypeNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseType maps a user supplied name to a CompressionType.
func ParseType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gzip", "gz", "":
		return TypeGzip, nil
	case "zstd", "zst":
		return TypeZSTD, nil
	case "xz":
		return TypeXZ, nil
	case "brotli", "br":
		return TypeBrotli, nil
	case "none", "raw":
		return TypeNone, nil
	}
	return TypeGzip, fmt.Errorf("unsupported compression type: %s", name)
}

// Codec compresses and decompresses whole buffers.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Type() CompressionType
	// Suffix is appended to "bmp" in output file names, e.g. "gz".
	Suffix() string
	Implementation() string
}

type Manager struct {
	codecs map[CompressionType]Codec
}

// NewManager creates a manager with every available codec registered
func NewManager() *Manager {
	manager := &Manager{
		codecs: make(map[CompressionType]Codec),
	}

	manager.codecs[TypeNone] = NewNoneCodec()
	manager.codecs[TypeGzip] = NewGzipCodec()
	manager.codecs[TypeZSTD] = NewZSTDCodec()
	manager.codecs[TypeXZ] = NewXZCodec()
	manager.codecs[TypeBrotli] = NewBrotliCodec()

	return manager
}

// Get returns the codec for the specified type
func (m *Manager) Get(compType CompressionType) (Codec, error) {
	codec, exists := m.codecs[compType]
	if !exists {
		return nil, fmt.Errorf("unsupported compression type: %s", compType.String())
	}
	return codec, nil
}

// Compress compresses data using the specified compression type
func (m *Manager) Compress(compType CompressionType, data []byte) ([]byte, error) {
	codec, err := m.Get(compType)
	if err != nil {
		return nil, err
	}
	return codec.Compress(data)
}

// Decompress decompresses data using the specified compression type
func (m *Manager) Decompress(compType CompressionType, data []byte) ([]byte, error) {
	codec, err := m.Get(compType)
	if err != nil {
		return nil, err
	}
	return codec.Decompress(data)
}

// SupportedTypes returns all registered compression types in a stable order
func (m *Manager) SupportedTypes() []CompressionType {
	types := make([]CompressionType, 0, len(m.codecs))
	for t := range m.codecs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ImplementationInfo returns information about the implementation of each codec
func (m *Manager) ImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, c := range m.codecs {
		info[t] = c.Implementation()
	}
	return info
}

// Close releases codecs that hold encoder or decoder state.
func (m *Manager) Close() error {
	var errs []error
	for _, c := range m.codecs {
		if closer, ok := c.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
