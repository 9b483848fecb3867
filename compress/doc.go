// Package compress provides the codecs used to read compressed homing logs.
//
// Measurement runs can span many hours and their CSV logs are often stored
// compressed. This package exposes a small Codec interface over the formats
// the log reader accepts (gzip, zstd, s2, lz4) plus a no-op passthrough, and
// a Sniff function that detects the format from a file's leading magic
// bytes, so callers never have to declare the compression in use.
//
// All backends are pure Go. The zstd codec pools its decoder: the
// klauspost/compress zstd implementation is designed to be reused and
// operates without allocations after warmup.
package compress
