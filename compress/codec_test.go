package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLog = []byte("sample,mcu_pos_z,bed_t,frame_t,bed_target\n" +
	"0,1000,40.0,25.0,60.0\n" +
	"1,1000,41.2,25.1,60.0\n" +
	"2,1200,42.5,25.3,60.0\n")

func TestRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"gzip": NewGzipCodec(),
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(sampleLog)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)
			assert.False(t, bytes.Equal(compressed, sampleLog))

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, sampleLog, decompressed)
		})
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		want  Format
	}{
		{"gzip", NewGzipCodec(), FormatGzip},
		{"zstd", NewZstdCodec(), FormatZstd},
		{"s2", NewS2Codec(), FormatS2},
		{"lz4", NewLZ4Codec(), FormatLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(sampleLog)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Sniff(compressed))
		})
	}
}

func TestSniffPlaintext(t *testing.T) {
	assert.Equal(t, FormatNone, Sniff(sampleLog))
	assert.Equal(t, FormatNone, Sniff(nil))
	assert.Equal(t, FormatNone, Sniff([]byte{0x1f}))
}

func TestDecode(t *testing.T) {
	for _, codec := range []Codec{NewGzipCodec(), NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		compressed, err := codec.Compress(sampleLog)
		require.NoError(t, err)

		out, err := Decode(compressed)
		require.NoError(t, err)
		assert.Equal(t, sampleLog, out)
	}

	// Plaintext passes through untouched.
	out, err := Decode(sampleLog)
	require.NoError(t, err)
	assert.Equal(t, sampleLog, out)
}

func TestDecodeCorrupted(t *testing.T) {
	codec := NewZstdCodec()
	compressed, err := codec.Compress(sampleLog)
	require.NoError(t, err)

	// Truncate past the magic so sniffing still selects zstd.
	_, err = Decode(compressed[:6])
	assert.Error(t, err)
}

func TestEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewGzipCodec(), NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		out, err := codec.Compress(nil)
		require.NoError(t, err)
		assert.Nil(t, out)

		out, err = codec.Decompress(nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	}
}

func TestForFormatUnknown(t *testing.T) {
	_, err := ForFormat(Format(0xEE))
	assert.Error(t, err)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "Gzip", FormatGzip.String())
	assert.Equal(t, "Zstd", FormatZstd.String())
	assert.Equal(t, "S2", FormatS2.String())
	assert.Equal(t, "LZ4", FormatLZ4.String())
	assert.Equal(t, "None", FormatNone.String())
	assert.Equal(t, "Unknown", Format(0xEE).String())
}
