package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"longer", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint(tt.data))
		})
	}
}

func TestFingerprintStable(t *testing.T) {
	data := []byte("sample,mcu_pos_z,bed_t,frame_t\n0,1000,40.0,25.0\n")
	assert.Equal(t, Fingerprint(data), Fingerprint(append([]byte(nil), data...)))
}
