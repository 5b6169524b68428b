package streaming

import (
	"testing"

	"github.com/chardetect/chardet-core/pkg/orchestrator"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// Streaming scenario (spec §8): feeding the UTF-8 BOM then more bytes
// resolves "done" after the very first Feed, and Close agrees.
func TestStreamingBOMResolvesOnFirstFeed(t *testing.T) {
	d := New(orchestrator.Options{Era: registry.ModernWeb}, 0)

	if err := d.Feed([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Done() {
		t.Fatalf("expected Done() to be true after feeding a complete BOM")
	}
	res, ok := d.Result()
	if !ok {
		t.Fatalf("expected a cached result")
	}
	if res.Encoding != "utf-8-sig" || res.Confidence != 1.0 {
		t.Fatalf("expected utf-8-sig/1.0 after the BOM feed, got %+v", res)
	}

	if err := d.Feed([]byte("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	closed, err := d.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed.Encoding != "utf-8-sig" || closed.Confidence != 1.0 || closed.Language != "" {
		t.Fatalf("expected Close() to agree with the cached BOM verdict, got %+v", closed)
	}
}

func TestStreamingResetClearsState(t *testing.T) {
	d := New(orchestrator.Options{Era: registry.ModernWeb}, 0)
	if err := d.Feed([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Done() {
		t.Fatalf("expected Done() before Reset")
	}
	d.Reset()
	if d.Done() {
		t.Fatalf("expected Done() to be false after Reset")
	}
	if _, ok := d.Result(); ok {
		t.Fatalf("expected no cached result after Reset")
	}
}

// Idempotence (spec §8): feeding b in any chunk partitioning then Close
// returns the same result as a one-shot orchestrator.DetectOne, as long
// as every byte fits within MaxBytes.
func TestStreamingIdempotentUnderChunking(t *testing.T) {
	data := []byte("Hello, this is a reasonably long plain ASCII sentence used for testing.")
	opts := orchestrator.Options{Era: registry.ModernWeb}

	want, err := orchestrator.DetectOne(data, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	partitions := [][]int{
		{len(data)},
		{1, len(data) - 1},
		{3, 5, 7, len(data) - 15},
	}
	for _, sizes := range partitions {
		d := New(opts, 0)
		offset := 0
		for _, size := range sizes {
			end := offset + size
			if end > len(data) {
				end = len(data)
			}
			if err := d.Feed(data[offset:end]); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			offset = end
		}
		got, err := d.Close()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("partition %v: got %+v, want %+v", sizes, got, want)
		}
	}
}

func TestStreamingFeedAfterDoneIsNoop(t *testing.T) {
	d := New(orchestrator.Options{Era: registry.ModernWeb}, 0)
	if err := d.Feed([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := d.Result()
	if err := d.Feed([]byte("more data that should be ignored")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := d.Result()
	if first != second {
		t.Fatalf("expected Feed after Done to leave the cached result unchanged")
	}
}
