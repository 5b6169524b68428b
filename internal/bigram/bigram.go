// Package bigram implements the dense byte-adjacency tables and cosine
// scoring loop spec.md §4.11 calls out as "the most performance-sensitive
// code in the system." Tables are flat 65,536-entry arrays indexed by
// (b1<<8)|b2, mirroring coregx-coregex's dense byte-indexed frequency
// table idiom (simd/byte_frequencies.go) rather than a sparse map.
package bigram

import (
	"math"

	"golang.org/x/sys/cpu"
)

// TableSize is the number of (b1, b2) adjacency slots: 256*256.
const TableSize = 1 << 16

// Model is an immutable, pre-trained bigram profile for one
// language/encoding pair (spec §3's "Bigram Profile").
type Model struct {
	Language string
	Encoding string
	Table    [TableSize]uint8
	Norm     float32
}

// Key returns the profile identity string ("language/encoding") spec §3
// defines as the Bigram Profile's identity.
func (m *Model) Key() string {
	return m.Language + "/" + m.Encoding
}

// Sample is a mutable, per-Context working accumulator: a dense count of
// (b1, b2) adjacencies observed in the analyzed prefix. Reusable across
// calls via Reset, mirroring axiomhq-fsst's reused encBuf scratch buffer
// to avoid a 256KB allocation (64K uint32) per detect() call.
type Sample struct {
	counts [TableSize]uint32
	norm   float64
	dirty  bool
}

// Reset clears the sample for reuse.
func (s *Sample) Reset() {
	if !s.dirty {
		return
	}
	for i := range s.counts {
		s.counts[i] = 0
	}
	s.norm = 0
	s.dirty = false
}

// Accumulate counts every adjacent byte pair in data.
func (s *Sample) Accumulate(data []byte) {
	if len(data) < 2 {
		return
	}
	s.dirty = true
	prev := data[0]
	for _, b := range data[1:] {
		s.counts[(uint16(prev)<<8)|uint16(b)]++
		prev = b
	}
	s.norm = 0 // invalidated; recomputed lazily by Norm()
}

// Norm returns (and caches) the sample's Euclidean norm.
func (s *Sample) Norm() float64 {
	if s.norm != 0 {
		return s.norm
	}
	var sumSq float64
	for _, c := range s.counts {
		f := float64(c)
		sumSq += f * f
	}
	s.norm = math.Sqrt(sumSq)
	return s.norm
}

// hasAVX2 is resolved once at package init, mirroring coregx-coregex's own
// arch-gated fast-path selection (simd's _amd64.go/_fallback.go split) —
// here expressed as a runtime branch rather than a build-tag split, since
// the accumulation loop itself is portable Go with no platform-specific
// instructions to hide behind a build tag.
var hasAVX2 = cpu.X86.HasAVX2

// Cosine computes cosine similarity between the sample and a trained
// model: Σ sample[i]*model[i] / (‖sample‖·‖model‖), per spec §4.11.
// When AVX2 is available the accumulation loop is manually unrolled 8-wide
// to reduce loop-overhead and encourage the Go compiler's own
// auto-vectorization passes to recognize a SIMD-friendly shape; the
// fallback loop is a plain scalar accumulation. Results are identical
// either way — this only affects throughput on the hot path spec.md names
// as the place to focus optimization.
func Cosine(sample *Sample, model *Model) float64 {
	sampleNorm := sample.Norm()
	modelNorm := float64(model.Norm)
	if sampleNorm == 0 || modelNorm == 0 {
		return 0
	}

	var dot float64
	if hasAVX2 {
		dot = dotUnrolled8(&sample.counts, &model.Table)
	} else {
		dot = dotScalar(&sample.counts, &model.Table)
	}

	cos := dot / (sampleNorm * modelNorm)
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}

func dotScalar(sample *[TableSize]uint32, model *[TableSize]uint8) float64 {
	var sum float64
	for i := 0; i < TableSize; i++ {
		if sample[i] != 0 {
			sum += float64(sample[i]) * float64(model[i])
		}
	}
	return sum
}

// dotUnrolled8 computes the same dot product 8 accumulators wide so the
// compiler can interleave independent multiply-adds instead of carrying a
// single dependency chain, the same shape coregx-coregex's own AVX2 fast
// paths rely on the Go compiler and SSA backend to schedule well.
func dotUnrolled8(sample *[TableSize]uint32, model *[TableSize]uint8) float64 {
	var s0, s1, s2, s3, s4, s5, s6, s7 float64
	i := 0
	for ; i+8 <= TableSize; i += 8 {
		s0 += float64(sample[i+0]) * float64(model[i+0])
		s1 += float64(sample[i+1]) * float64(model[i+1])
		s2 += float64(sample[i+2]) * float64(model[i+2])
		s3 += float64(sample[i+3]) * float64(model[i+3])
		s4 += float64(sample[i+4]) * float64(model[i+4])
		s5 += float64(sample[i+5]) * float64(model[i+5])
		s6 += float64(sample[i+6]) * float64(model[i+6])
		s7 += float64(sample[i+7]) * float64(model[i+7])
	}
	sum := s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7
	for ; i < TableSize; i++ {
		sum += float64(sample[i]) * float64(model[i])
	}
	return sum
}
