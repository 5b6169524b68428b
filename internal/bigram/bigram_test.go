package bigram

import (
	"math"
	"testing"
)

func buildModel(lang, enc string, fill func(i int) uint8) *Model {
	m := &Model{Language: lang, Encoding: enc}
	var sumSq float64
	for i := 0; i < TableSize; i++ {
		v := fill(i)
		m.Table[i] = v
		sumSq += float64(v) * float64(v)
	}
	m.Norm = float32(math.Sqrt(sumSq))
	return m
}

func TestCosineOverlappingSampleIsWithinUnitInterval(t *testing.T) {
	model := buildModel("English", "ascii", func(i int) uint8 {
		if i%97 == 0 {
			return 10
		}
		return 1
	})

	var sample Sample
	// Build a byte stream that only touches low-weight slots of the model:
	// repeating 0,1 yields pairs (0,1) and (1,0), slots 1 and 256, both
	// weighted 1. The cosine is small but must be positive and at most 1.
	data := make([]byte, 0, 4096)
	for rep := 0; rep < 50; rep++ {
		data = append(data, 0, 1)
	}
	sample.Accumulate(data)

	got := Cosine(&sample, model)
	if got <= 0 {
		t.Fatalf("expected positive cosine similarity, got %v", got)
	}
	if got > 1.0001 {
		t.Fatalf("cosine similarity must be <= 1, got %v", got)
	}
}

func TestCosineEmptySampleIsZero(t *testing.T) {
	model := buildModel("English", "ascii", func(i int) uint8 { return 1 })
	var sample Sample
	if got := Cosine(&sample, model); got != 0 {
		t.Fatalf("expected 0 cosine for empty sample, got %v", got)
	}
}

func TestSampleResetClearsCounts(t *testing.T) {
	var sample Sample
	sample.Accumulate([]byte("hello world"))
	if sample.Norm() == 0 {
		t.Fatalf("expected nonzero norm after accumulate")
	}
	sample.Reset()
	if sample.Norm() != 0 {
		t.Fatalf("expected zero norm after reset, got %v", sample.Norm())
	}
}

func TestKeyFormat(t *testing.T) {
	m := &Model{Language: "Russian", Encoding: "windows-1251"}
	if m.Key() != "Russian/windows-1251" {
		t.Fatalf("unexpected key: %q", m.Key())
	}
}

func TestDotScalarAndUnrolledAgree(t *testing.T) {
	model := buildModel("Test", "test-enc", func(i int) uint8 { return uint8((i * 7) % 251) })
	var sample Sample
	data := make([]byte, 0, 10000)
	for i := 0; i < 5000; i++ {
		data = append(data, byte(i%256), byte((i*3)%256))
	}
	sample.Accumulate(data)

	scalar := dotScalar(&sample.counts, &model.Table)
	unrolled := dotUnrolled8(&sample.counts, &model.Table)

	diff := math.Abs(scalar - unrolled)
	if diff > 1e-6*math.Max(1, math.Abs(scalar)) {
		t.Fatalf("scalar and unrolled dot products disagree: %v vs %v", scalar, unrolled)
	}
}
