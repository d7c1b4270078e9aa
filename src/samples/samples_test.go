package samples

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// encode is the inverse of Decode, used for round-trip checks.
func encode(vals []uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint32(b[i*4:], v)
	}
	return b
}

func TestDecodeRoundTrip(t *testing.T) {
	vals := []uint32{0, 1, 42, 1_000_000, 0xFFFFFFFF}
	b := encode(vals)
	got := Decode(b)
	if len(got) != len(b)/4 {
		t.Fatalf("expected %d samples got %d", len(b)/4, len(got))
	}
	if diff := cmp.Diff(vals, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, encode(got)); diff != "" {
		t.Fatalf("re-encode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTruncatesPartialElement(t *testing.T) {
	vals := []uint32{10, 20, 30}
	for extra := 0; extra < 4; extra++ {
		b := encode(vals)
		for i := 0; i < extra; i++ {
			b = append(b, 0xAB)
		}
		got := Decode(b)
		if len(got) != len(b)/4 {
			t.Fatalf("extra=%d: expected %d samples got %d", extra, len(b)/4, len(got))
		}
		if diff := cmp.Diff(vals, got); diff != "" {
			t.Fatalf("extra=%d: decoded prefix mismatch (-want +got):\n%s", extra, diff)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(nil); len(got) != 0 {
		t.Fatalf("expected no samples got %v", got)
	}
	if got := Decode([]byte{1, 2, 3}); len(got) != 0 {
		t.Fatalf("expected no samples from 3 bytes got %v", got)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lat.bin")
	vals := []uint32{5, 6, 7, 8}
	if err := os.WriteFile(path, encode(vals), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff(vals, got); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.bin")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFileUndersized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := ReadFile(path)
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("expected ErrNoSamples got %v", err)
	}
}
