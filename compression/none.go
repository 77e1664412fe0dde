package compression

// NoneCodec stores data as-is.
type NoneCodec struct{}

func NewNoneCodec() Codec {
	return &NoneCodec{}
}

func (c *NoneCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCodec) Type() CompressionType {
	return TypeNone
}

func (c *NoneCodec) Suffix() string {
	return ""
}

func (c *NoneCodec) Implementation() string {
	return "identity"
}
