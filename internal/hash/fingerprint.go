package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a dataset's bytes.
//
// The fingerprint identifies the exact input a calibration run was computed
// from, so results can be traced back to their dataset. Identical bytes
// always produce the same fingerprint.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
