// Package samples decodes raw latency sample files.
//
// A sample file is a flat binary dump of unsigned 32-bit integers in native
// byte order: no header, no length prefix, length implied by file size. Each
// integer is one latency measurement in microseconds.
package samples

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// ErrNoSamples reports a file that decoded to zero complete samples
// (fewer than 4 bytes of payload).
var ErrNoSamples = errors.New("no complete samples")

// Decode interprets b as a sequence of native-order uint32 values. A trailing
// partial element (len(b) not a multiple of 4) is silently dropped; callers
// get exactly len(b)/4 values.
func Decode(b []byte) []uint32 {
	n := len(b) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.NativeEndian.Uint32(b[i*4:])
	}
	return out
}

// ReadFile reads path in full and decodes it. A missing or unreadable file is
// an error; a readable file with fewer than 4 bytes returns ErrNoSamples so
// callers can decide whether to skip or abort.
func ReadFile(path string) ([]uint32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	vals := Decode(b)
	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	return vals, nil
}
