package wavio

import (
	"math"
	"path/filepath"
	"testing"
)

func TestStereoRoundTrip(t *testing.T) {
	const sampleRate = 48000
	n := 1024
	left := make([]float32, n)
	right := make([]float32, n)
	for i := range left {
		left[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/sampleRate))
		right[i] = -left[i]
	}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	if err := WriteStereo(path, left, right, sampleRate); err != nil {
		t.Fatalf("WriteStereo: %v", err)
	}

	mono, rate, err := ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono: %v", err)
	}
	if rate != sampleRate {
		t.Fatalf("rate = %d, want %d", rate, sampleRate)
	}
	if len(mono) != n {
		t.Fatalf("frames = %d, want %d", len(mono), n)
	}
	// Left and right cancel in the downmix, up to 16-bit quantization.
	const tol = 2.0 / 32768.0
	for i, v := range mono {
		if math.Abs(float64(v)) > tol {
			t.Fatalf("downmix[%d] = %v, want ~0", i, v)
		}
	}
}

func TestMonoRoundTrip(t *testing.T) {
	const sampleRate = 44100
	n := 512
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(0.25 * math.Sin(2*math.Pi*220*float64(i)/sampleRate))
	}

	path := filepath.Join(t.TempDir(), "mono.wav")
	if err := WriteMono(path, data, sampleRate); err != nil {
		t.Fatalf("WriteMono: %v", err)
	}
	got, rate, err := ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono: %v", err)
	}
	if rate != sampleRate || len(got) != n {
		t.Fatalf("got %d frames @ %d Hz, want %d @ %d", len(got), rate, n, sampleRate)
	}
	const tol = 2.0 / 32768.0
	for i := range got {
		if math.Abs(float64(got[i]-data[i])) > tol {
			t.Fatalf("sample %d = %v, want %v within %v", i, got[i], data[i], tol)
		}
	}
}

func TestWriteStereoLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := WriteStereo(path, make([]float32, 4), make([]float32, 5), 48000); err == nil {
		t.Errorf("expected error for mismatched channel lengths")
	}
}

func TestResampleIfNeededPassthrough(t *testing.T) {
	x := []float32{1, 2, 3}
	got, err := ResampleIfNeeded(x, 48000, 48000)
	if err != nil {
		t.Fatalf("ResampleIfNeeded: %v", err)
	}
	if &got[0] != &x[0] {
		t.Errorf("same-rate resample should return the input unchanged")
	}
}

func TestResampleChangesLength(t *testing.T) {
	x := make([]float32, 48000)
	for i := range x {
		x[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / 48000))
	}
	got, err := ResampleIfNeeded(x, 48000, 24000)
	if err != nil {
		t.Fatalf("ResampleIfNeeded: %v", err)
	}
	want := 24000
	if len(got) < want-64 || len(got) > want+64 {
		t.Errorf("resampled length = %d, want ~%d", len(got), want)
	}
}
