package compress

import (
	"bytes"
	"fmt"
)

// Format identifies a supported compression format.
type Format uint8

const (
	// FormatNone represents uncompressed data.
	FormatNone Format = iota
	// FormatGzip represents gzip framed data.
	FormatGzip
	// FormatZstd represents Zstandard framed data.
	FormatZstd
	// FormatS2 represents an S2 stream.
	FormatS2
	// FormatLZ4 represents an LZ4 frame.
	FormatLZ4
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "None"
	case FormatGzip:
		return "Gzip"
	case FormatZstd:
		return "Zstd"
	case FormatS2:
		return "S2"
	case FormatLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec combines compression and decompression for one format.
//
// Decompress validates the input framing and returns an error for corrupted
// data or data produced by a different format. Returned slices are newly
// allocated and owned by the caller; inputs are never modified.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Magic byte prefixes of the supported formats.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	// Stream identifier chunks: a 0xff chunk header followed by "S2sTwO"
	// for native S2 streams or "sNaPpY" for snappy-compatible ones; the S2
	// reader accepts both.
	magicS2     = []byte{0xff, 0x06, 0x00, 0x00, 0x53, 0x32, 0x73, 0x54, 0x77, 0x4f}
	magicSnappy = []byte{0xff, 0x06, 0x00, 0x00, 0x73, 0x4e, 0x61, 0x50, 0x70, 0x59}
)

// Sniff detects the compression format from the data's leading magic bytes.
// Data matching no known magic is reported as FormatNone.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(data, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(data, magicLZ4):
		return FormatLZ4
	case bytes.HasPrefix(data, magicS2), bytes.HasPrefix(data, magicSnappy):
		return FormatS2
	default:
		return FormatNone
	}
}

// ForFormat returns the Codec for the given format.
func ForFormat(format Format) (Codec, error) {
	switch format {
	case FormatNone:
		return NewNoOpCodec(), nil
	case FormatGzip:
		return NewGzipCodec(), nil
	case FormatZstd:
		return NewZstdCodec(), nil
	case FormatS2:
		return NewS2Codec(), nil
	case FormatLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// Decode sniffs the data's format and returns the decompressed bytes.
// Uncompressed data is returned as-is.
func Decode(data []byte) ([]byte, error) {
	format := Sniff(data)
	codec, err := ForFormat(format)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", format, err)
	}

	return out, nil
}
